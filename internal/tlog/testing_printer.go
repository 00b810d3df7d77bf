package tlog

// TestingPrinter подмножество методов *testing.T, которым пользуется пакет.
type TestingPrinter interface {
	Helper()
	Log(a ...any)
	Error(a ...any)
	Errorf(format string, a ...any)
}
