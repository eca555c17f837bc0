// Package slot sorts a container's children into named slots.
//
// A Definition lists slots in order, each accepting one component identity.
// Classify walks the children once and appends every element child to the
// first slot whose identity matches its own:
//
//	def := slot.MustDefinition(
//	    slot.Entry{Name: "header", Accepts: HeaderIdentity},
//	    slot.Entry{Name: "main", Accepts: MainIdentity},
//	)
//	slots := slot.Classify(children, def)
//	slots["header"] // header children in declaration order
//
// Children that are not elements (text, nil, booleans) are skipped and
// elements that match no slot are dropped. Neither is an error. Callers that
// want to see what was left out can install a drop hook on a Classifier, or
// use Strict to turn unmatched elements into an error.
package slot
