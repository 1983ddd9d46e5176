package normalize

// teamAliases maps upstream team codes to short display names.
var teamAliases = map[string]string{
	"ANAHUAC QUERETARO":      "Anáhuac QRO",
	"ANAHUAC XALAPA":         "Anáhuac XAL",
	"AUTONOMA DE CHIHUAHUA":  "UACH",
	"CETYS MEXICALI":         "CETYS",
	"CEU MONTERREY":          "CEU",
	"INTERAMERICANA":         "Inter",
	"TEC MTY GUADALAJARA":    "Tec GDL",
	"TEC MTY HIDALGO":        "Tec HGO",
	"TEC MTY MONTERREY":      "Tec MTY",
	"TEC MTY PUEBLA":         "Tec PUE",
	"TEC MTY SANTA FE":       "Tec CSF",
	"TEC MTY TOLUCA":         "Tec TOL",
	"UANE":                   "UANE",
	"UANL":                   "UANL",
	"UDLAP":                  "UDLAP",
	"UMAD":                   "UMAD",
	"UNIVERSIDAD MONTRER":    "Montrer",
	"UP MEXICO":              "UP MX",
	"UPAEP":                  "UPAEP",
	"ANAHUAC NORTE":          "Anáhuac NTE",
	"CETYS TIJUANA":          "CETYS",
	"MODELO MERIDA":          "Modelo",
	"TEC MTY AGUASCALIENTES": "Tec AGS",
	"TEC MTY CEM":            "Tec CEM",
	"TEC MTY QUERETARO":      "Tec QRO",
	"UVAQ MORELIA":           "UVAQ",
}

// TeamAlias returns the display name for an upstream team code.
// Unmapped names pass through unchanged.
func TeamAlias(name string) string {
	if alias, ok := teamAliases[name]; ok {
		return alias
	}
	return name
}
