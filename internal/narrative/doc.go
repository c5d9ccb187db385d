// Package narrative parses the free-text ("TX") section of a notice.
//
// The narrative carried most substantive award details and changed layout
// once over the bulletin's lifetime, so two incompatible grammars coexist:
//
//   - legacy: subsections keyed by a small integer ordinal, where a line
//     only opens a new subsection if its ordinal is exactly the previous
//     maximum plus one (stray numerals inside prose stay prose)
//   - modern: "SECTION <roman>:" groups containing "<roman>.<digit>"
//     subsections dispatched through a handler registry, with repeated
//     keys accumulated per lot instead of overwritten
//
// Grammar selection is a pure classification over the raw section text.
package narrative
