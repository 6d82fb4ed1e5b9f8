package codefmt

// Sprintf is a shorthand for [Formatter.Sprintf] with the package of pkger.
func Sprintf(pkger Pkger, format string, args ...any) string {
	return newByPkger(pkger).Sprintf(format, args...)
}

// Errorf is a shorthand for [Formatter.Errorf] with the package of pkger.
func Errorf(pkger Pkger, poser Poser, format string, args ...any) error {
	return newByPkger(pkger).Errorf(poser, format, args...)
}
