// Package diagnostic renders assertion failures for the must helpers.
//
// A Failure carries the message plus, when relevant, the compared values and
// the captured error. The Formatter collapses long slices and maps to a count,
// truncates other long values and colours labels with fatih/color.
package diagnostic
