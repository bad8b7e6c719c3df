package marking

// OtherDissemControl identifies one control in the other-dissemination
// vocabulary: restrictions outside the main dissemination set (law
// enforcement, State Department distribution captions, ACCM).
type OtherDissemControl int

const (
	OtherDissemACCM OtherDissemControl = iota
	OtherDissemEXDIS
	OtherDissemNODIS
	OtherDissemSBU
	OtherDissemSBUNoforn
	OtherDissemLES
	OtherDissemLESNoforn
	OtherDissemSSI
)

// OtherDissemControls is the process-wide other-dissemination vocabulary.
// ACCM keeps its trailing hyphen: it is only ever a prefix of "ACCM-NICKNAME"
// runs, never a standalone token.
var OtherDissemControls = newRegistry("other dissemination control", []controlEntry[OtherDissemControl]{
	{OtherDissemACCM, "ACCM", []string{"ACCM-"}, []string{"ACCM-"}},
	{OtherDissemEXDIS, "EXDIS", []string{"EXDIS", "EXCLUSIVE DISTRIBUTION"}, []string{"XD"}},
	{OtherDissemNODIS, "NODIS", []string{"NODIS", "NO DISTRIBUTION"}, []string{"ND"}},
	{OtherDissemSBU, "SBU", []string{"SBU", "SENSITIVE BUT UNCLASSIFIED"}, []string{"SBU"}},
	{OtherDissemSBUNoforn, "SBU_NOFORN", []string{"SBU NOFORN"}, []string{"SBU-NF"}},
	{OtherDissemLES, "LES", []string{"LES", "LAW ENFORCEMENT SENSITIVE"}, []string{"LES"}},
	{OtherDissemLESNoforn, "LES_NOFORN", []string{"LES NOFORN"}, []string{"LES-NF"}},
	{OtherDissemSSI, "SSI", []string{"SSI", "SENSITIVE SECURITY INFORMATION"}, []string{"SSI"}},
})

// String returns the primary banner name.
func (c OtherDissemControl) String() string {
	return OtherDissemControls.Name(c)
}
