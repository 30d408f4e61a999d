package constants

import "strings"

// Lot is a standard French construction work package ("lot") label used to
// categorize findings extracted from a DCE.
type Lot string

const (
	GrosOeuvre         Lot = "GrosOeuvre"
	Charpente          Lot = "Charpente"
	Cloisons           Lot = "Cloisons"
	MenuiserieExt      Lot = "MenuiserieExterieure"
	Revetements        Lot = "Revetements"
	Plomberie          Lot = "Plomberie"
	Electricite        Lot = "Electricite"
	CVC                Lot = "CVC"
	Amenagement        Lot = "AmenagementInterieur"
	Ascenseur          Lot = "Ascenseur"
	Serrurerie         Lot = "Serrurerie"
	VRD                Lot = "VRD"
	EspacesVerts       Lot = "EspacesVerts"
	LotAdministrative  Lot = "Administrative"
	LotUncategorized   Lot = "Uncategorized"
)

var allLots = []Lot{
	GrosOeuvre, Charpente, Cloisons, MenuiserieExt, Revetements,
	Plomberie, Electricite, CVC, Amenagement, Ascenseur,
	Serrurerie, VRD, EspacesVerts, LotAdministrative, LotUncategorized,
}

// lotKeywords maps DCE vocabulary (lowercased, accent-stripped variants
// included where common) to its canonical lot.
var lotKeywords = map[string]Lot{
	"gros oeuvre": GrosOeuvre, "gros œuvre": GrosOeuvre, "fondation": GrosOeuvre,
	"structure": GrosOeuvre, "béton": GrosOeuvre, "maçonnerie": GrosOeuvre,

	"charpente": Charpente, "couverture": Charpente, "ossature": Charpente,
	"menuiserie bois": Charpente,

	"cloison": Cloisons, "placo": Cloisons, "faux plafond": Cloisons,
	"isolation": Cloisons, "doublage": Cloisons,

	"menuiserie aluminium": MenuiserieExt, "menuiserie alu": MenuiserieExt,
	"menuiserie métallique": MenuiserieExt, "fenêtre": MenuiserieExt, "baie": MenuiserieExt,

	"revêtement": Revetements, "carrelage": Revetements, "peinture": Revetements,
	"enduit": Revetements,

	"plomberie": Plomberie, "sanitaire": Plomberie,

	"électricité": Electricite, "courant fort": Electricite,
	"éclairage": Electricite, "tableau électrique": Electricite,

	"chauffage": CVC, "ventilation": CVC, "climatisation": CVC,
	"vmc": CVC, "cvc": CVC,

	"cuisine": Amenagement, "aménagement intérieur": Amenagement, "mobilier": Amenagement,

	"ascenseur": Ascenseur, "monte-charge": Ascenseur, "élévateur": Ascenseur,

	"serrurerie": Serrurerie, "métallerie": Serrurerie, "garde-corps": Serrurerie,

	"vrd": VRD, "voirie": VRD, "assainissement": VRD, "terrassement": VRD,

	"espace vert": EspacesVerts, "paysager": EspacesVerts, "plantation": EspacesVerts,
}

// LotsAsStringSlice returns all lot labels for use as a schema enum.
func LotsAsStringSlice() []string {
	result := make([]string, len(allLots))
	for i, l := range allLots {
		result[i] = string(l)
	}
	return result
}

// CanonicalizeLot resolves a free-form category label from the model to a
// canonical lot. Returns LotUncategorized and false when nothing matches.
func CanonicalizeLot(input string) (Lot, bool) {
	if input == "" {
		return LotUncategorized, false
	}
	normalized := strings.ToLower(strings.TrimSpace(input))

	for _, l := range allLots {
		if normalized == strings.ToLower(string(l)) {
			return l, true
		}
	}
	for kw, l := range lotKeywords {
		if strings.Contains(normalized, kw) {
			return l, true
		}
	}
	return LotUncategorized, false
}

// DetectLots scans free text for lot vocabulary and returns the set of lots
// mentioned, in stable taxonomy order.
func DetectLots(text string) []Lot {
	lower := strings.ToLower(text)
	seen := make(map[Lot]bool)
	for kw, l := range lotKeywords {
		if strings.Contains(lower, kw) {
			seen[l] = true
		}
	}
	var out []Lot
	for _, l := range allLots {
		if seen[l] {
			out = append(out, l)
		}
	}
	return out
}
