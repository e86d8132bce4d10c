// Package python provides requirements.txt parsing and PyPI version lookups.
//
// Lines are taken as written: no environment markers, extras or include
// directives are interpreted. "flask==2.0.1" yields "flask:2.0.1" and
// "requests" yields "requests".
package python
