// Package framework contains the low-level implementation of test harness infrastructure
// that is not specific to any particular application under test.
//
// The general model is:
//
// 1. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results, debug output, and failure artifacts such as screenshots.
//
// 2. Tests are selected with filters, either by matching the test path against regex
// patterns or by requiring/excluding tags that tests declare.
//
// 3. Artifacts produced during a run (screenshots, page dumps) are written through an
// ArtifactStore which owns the output directory and file naming.
//
// The domain-specific code that knows what is being tested is responsible for driving
// the application under test, declaring what tags each test carries, and providing a
// domain-specific test API on top of the test context.
package framework
