// Package mocks provides centralized mock implementations for testing.
//
// Each mock records its calls behind a mutex and returns either canned values
// or the result of a caller-supplied function field:
//
//	gen := mocks.NewMockGeneratorWithText(`[{"term":"A","definition":"B"}]`)
//	svc, _ := generation.NewService(gen, prompts, logger)
//	// ...
//	assert.Equal(t, 1, gen.CallCount())
//
// When adding a new mock, name the file after the interface being mocked and
// give the struct a function field per method.
package mocks
