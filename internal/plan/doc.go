// Package plan turns a project name into an ordered list of filesystem steps
// and runs them. Build is pure: it renders every template up front and reads
// nothing from the process environment except through the platform.Detector
// it is given. Execute applies the steps in order and stops at the first
// failure, leaving whatever was already written in place.
package plan
