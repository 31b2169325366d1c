// Package placeholder substitutes {{name}} tokens in template text. Unknown
// names and malformed delimiters are left as literal text, so templates may
// safely contain brace sequences that are not meant to be replaced.
package placeholder
