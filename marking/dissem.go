package marking

// DisseminationControl identifies one control in the dissemination-control
// vocabulary (NOFORN, ORCON, ...).
type DisseminationControl int

const (
	DissemRiskSensitive DisseminationControl = iota
	DissemFOUO
	DissemORCON
	DissemIMCON
	DissemNOFORN
	DissemPROPIN
	DissemRELIDO
	DissemRelTo
	DissemDisplayOnly
	DissemDEASensitive
	DissemFISA
	DissemEyesOnly
)

// DisseminationControls is the process-wide dissemination-control vocabulary.
//
// Aliases carry their whitespace deliberately: "REL TO " and "DISPLAY ONLY "
// keep a trailing space and " EYES ONLY" a leading one, because those
// controls only ever occur glued to country lists ("REL TO USA, GBR",
// "AUS/GBR EYES ONLY") and the prefix matcher depends on the exact text.
var DisseminationControls = newRegistry("dissemination control", []controlEntry[DisseminationControl]{
	{DissemRiskSensitive, "RS", []string{"RISK SENSITIVE"}, []string{"RS"}},
	{DissemFOUO, "FOUO", []string{"FOUO", "FOR OFFICIAL USE ONLY"}, []string{"FOUO"}},
	{DissemORCON, "ORCON", []string{"ORCON", "ORIGINATOR CONTROLLED"}, []string{"OC"}},
	{DissemIMCON, "IMCON", []string{"IMCON", "CONTROLLED IMAGERY"}, []string{"IMC"}},
	{DissemNOFORN, "NOFORN", []string{"NOFORN", "NOT RELEASABLE TO FOREIGN NATIONALS"}, []string{"NF"}},
	{DissemPROPIN, "PROPIN", []string{"PROPIN", "CAUTION-PROPRIETARY INFORMATION INVOLVED"}, []string{"PR"}},
	{DissemRELIDO, "RELIDO", []string{"RELIDO", "RELEASABLE BY INFORMATION DISCLOSURE OFFICIAL"}, []string{"RELIDO"}},
	{DissemRelTo, "REL", []string{"REL TO "}, []string{"REL "}},
	{DissemDisplayOnly, "DISPLAY", []string{"DISPLAY ONLY "}, []string{"DISPLAY ONLY "}},
	{DissemDEASensitive, "DSEN", []string{"DEA SENSITIVE"}, []string{"DSEN"}},
	{DissemFISA, "FISA", []string{"FISA", "FOREIGN INTELLIGENCE SURVEILLANCE ACT"}, []string{"FISA"}},
	{DissemEyesOnly, "EYES", []string{" EYES ONLY"}, []string{" EYES ONLY"}},
})

// String returns the primary banner name.
func (c DisseminationControl) String() string {
	return DisseminationControls.Name(c)
}
