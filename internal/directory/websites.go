// Package directory holds the static lookup of known company homepages.
// A miss is a normal, expected outcome: URLs are supplied, never discovered.
package directory

// knownWebsites maps company display names (exact match) to homepage URLs.
// Read-only after initialization.
var knownWebsites = map[string]string{
	"Walmart":                    "https://www.walmart.com",
	"Amazon":                     "https://www.amazon.com",
	"ExxonMobil":                 "https://corporate.exxonmobil.com",
	"Apple":                      "https://www.apple.com",
	"Microsoft":                  "https://www.microsoft.com",
	"JPMorgan Chase":             "https://www.jpmorganchase.com",
	"Chevron":                    "https://www.chevron.com",
	"UnitedHealth Group":         "https://www.unitedhealthgroup.com",
	"General Motors":             "https://www.gm.com",
	"Ford Motor Company":         "https://www.ford.com",
	"CVS Health":                 "https://www.cvshealth.com",
	"AT&T":                       "https://www.att.com",
	"Berkshire Hathaway":         "https://www.berkshirehathaway.com",
	"Costco Wholesale":           "https://www.costco.com",
	"Home Depot":                 "https://www.homedepot.com",
	"Walgreens Boots Alliance":   "https://www.walgreensbootsalliance.com",
	"Marathon Petroleum":         "https://www.marathonpetroleum.com",
	"Alphabet":                   "https://abc.xyz",
	"Meta":                       "https://about.meta.com",
	"Verizon Communications":     "https://www.verizon.com",
	"Comcast":                    "https://corporate.comcast.com",
	"Intel":                      "https://www.intel.com",
	"Pfizer":                     "https://www.pfizer.com",
	"Johnson & Johnson":          "https://www.jnj.com",
	"Cisco Systems":              "https://www.cisco.com",
	"Eli Lilly":                  "https://www.lilly.com",
	"Coca-Cola":                  "https://www.coca-colacompany.com",
	"PepsiCo":                    "https://www.pepsico.com",
	"Procter & Gamble":           "https://www.pg.com",
	"General Electric":           "https://www.ge.com",
	"Nvidia":                     "https://www.nvidia.com",
	"TSMC":                       "https://www.tsmc.com",
	"Samsung Electronics":        "https://www.samsung.com",
	"Hon Hai Precision":          "https://www.foxconn.com",
	"Dell Technologies":          "https://www.dell.com",
	"Oracle":                     "https://www.oracle.com",
	"Salesforce":                 "https://www.salesforce.com",
	"Adobe":                      "https://www.adobe.com",
	"IBM":                        "https://www.ibm.com",
	"Tencent":                    "https://www.tencent.com",
	"Alibaba":                    "https://www.alibabagroup.com",
	"JD.com":                     "https://www.jd.com",
	"Volkswagen Group":           "https://www.volkswagenag.com",
	"Shell":                      "https://www.shell.com",
	"BP":                         "https://www.bp.com",
	"TotalEnergies":              "https://www.totalenergies.com",
	"Nestlé":                     "https://www.nestle.com",
	"Glencore":                   "https://www.glencore.com",
	"Unilever":                   "https://www.unilever.com",
	"Siemens":                    "https://www.siemens.com",
	"Mercedes-Benz Group":        "https://www.mercedes-benz.com",
	"BMW":                        "https://www.bmwgroup.com",
	"Roche":                      "https://www.roche.com",
	"Novartis":                   "https://www.novartis.com",
	"Allianz":                    "https://www.allianz.com",
	"AXA":                        "https://www.axa.com",
	"HSBC":                       "https://www.hsbc.com",
	"Airbus":                     "https://www.airbus.com",
	"LVMH":                       "https://www.lvmh.com",
	"Deutsche Telekom":           "https://www.telekom.com",
	"Saudi Aramco":               "https://www.aramco.com",
	"Toyota Motor":               "https://global.toyota",
	"Mitsubishi Corporation":     "https://www.mitsubishicorp.com",
	"Honda Motor":                "https://global.honda",
	"Sony":                       "https://www.sony.com",
	"Reliance Industries":        "https://www.ril.com",
	"ICBC":                       "https://www.icbc.com.cn",
	"China Construction Bank":    "https://www.ccb.com",
	"Agricultural Bank of China": "https://www.abchina.com",
	"State Grid":                 "https://www.sgcc.com.cn",
	"Sinopec":                    "https://www.sinopecgroup.com",
	"China National Petroleum":   "https://www.cnpc.com.cn",
	"Ping An Insurance":          "https://www.pingan.com",
	"Hyundai Motor":              "https://www.hyundai.com",
	"SoftBank":                   "https://group.softbank",
	"McDonald’s":                 "https://www.mcdonalds.com",
	"Nike":                       "https://www.nike.com",
	"Disney":                     "https://www.thewaltdisneycompany.com",
	"Tesla":                      "https://www.tesla.com",
	"Boeing":                     "https://www.boeing.com",
	"Lockheed Martin":            "https://www.lockheedmartin.com",
	"Goldman Sachs":              "https://www.goldmansachs.com",
	"Morgan Stanley":             "https://www.morganstanley.com",
	"Citigroup":                  "https://www.citigroup.com",
	"Wells Fargo":                "https://www.wellsfargo.com",
	"BHP Group":                  "https://www.bhp.com",
	"Rio Tinto":                  "https://www.riotinto.com",
	"AstraZeneca":                "https://www.astrazeneca.com",
	"GSK":                        "https://www.gsk.com",
	"Sanofi":                     "https://www.sanofi.com",
	"UBS":                        "https://www.ubs.com",
	"Credit Suisse":              "https://www.credit-suisse.com",
	"Zurich Insurance Group":     "https://www.zurich.com",
	"Vitol":                      "https://www.vitol.com",
	"Trafigura":                  "https://www.trafigura.com",
	"IKEA":                       "https://www.ikea.com",
	"Lidl":                       "https://www.lidl.com",
	"Aldi":                       "https://www.aldi.com",
	"Koch Industries":            "https://www.kochind.com",
	"Cargill":                    "https://www.cargill.com",
}

// Lookup returns the homepage URL for an exactly matching company name.
// The second return is false on a miss.
func Lookup(name string) (string, bool) {
	u, ok := knownWebsites[name]
	return u, ok
}
