package marking

// Classification is a document classification level. Values are ordered by
// ascending sensitivity, so levels compare directly with <.
type Classification int

const (
	Unclassified Classification = iota
	Restricted
	Confidential
	Secret
	TopSecret
)

// Classifications resolves classification levels through the same registry
// engine as the control vocabularies. The single-letter portion markings are
// the familiar parenthetical forms: (U), (S), (TS).
var Classifications = newRegistry("classification", []controlEntry[Classification]{
	{Unclassified, "U", []string{"UNCLASSIFIED"}, []string{"U"}},
	{Restricted, "R", []string{"RESTRICTED"}, []string{"R"}},
	{Confidential, "C", []string{"CONFIDENTIAL"}, []string{"C"}},
	{Secret, "S", []string{"SECRET"}, []string{"S"}},
	{TopSecret, "TS", []string{"TOP SECRET"}, []string{"TS"}},
})

// String returns the banner form of the level.
func (c Classification) String() string {
	return Classifications.Name(c)
}
