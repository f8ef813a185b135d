package check

// Checker is implemented by all check types.
// Each check validates one aspect of an instrumented launch
// and returns a Result indicating success or failure.
//
// Implementations:
//   - setupcheck.LibraryCheck: binding library presence, integrity, engine version
//   - setupcheck.ScriptCheck: user script presence and readability
//   - setupcheck.TargetCheck: target executable resolution
type Checker interface {
	Run() Result
}
