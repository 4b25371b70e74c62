package config

// ApplyDefaults fills unset fields of cfg with the built-in defaults: the
// seven control regions, the standard model background samples and the
// eleven variables the tool has always plotted.
func ApplyDefaults(cfg *Config) {
	if cfg.Lumi == 0 {
		cfg.Lumi = 36100
	}
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if len(cfg.Data) == 0 {
		cfg.Data = map[string]string{
			"photon": "TT_Data_SinglePhoton.root",
			"muon":   "TT_Data_SingleMuon.root",
			"met":    "TT_Data_MET.root",
			"jetht":  "TT_Data_JetHT.root",
		}
	}
	if len(cfg.Backgrounds) == 0 {
		cfg.Backgrounds = []Sample{
			{Label: "QCD", File: "TT_QCD.root", Color: "#ffcc00"},
			{Label: "tt̄", File: "TT_TTbar.root", Color: "#ff0000"},
			{Label: "G+Jets", File: "TT_GJets.root", Color: "#009900"},
			{Label: "Z→ll", File: "TT_DYJetsToLL.root", Color: "#0000ff"},
			{Label: "Z→νν", File: "TT_ZJetsToNuNu.root", Color: "#000099"},
			{Label: "W+Jets", File: "TT_WJetsToLNu.root", Color: "#999999"},
			{Label: "TTG", File: "TT_TTG.root", Color: "#808000"},
			{Label: "TTZ", File: "TT_TTZ.root", Color: "#990099"},
			{Label: "diboson", File: "TT_Diboson.root", Color: "#cc3366"},
		}
	}
	if len(cfg.Regions) == 0 {
		cfg.Regions = []Region{
			{Name: "ttbar", Data: "met"},
			{Name: "ttbarNob", Data: "met"},
			{Name: "photon", Data: "photon"},
			{Name: "dilepton", Data: "muon"},
			{Name: "ttbarLep", Data: "muon"},
			{Name: "QCD", Data: "jetht"},
			{Name: "QCDb", Data: "jetht"},
		}
	}
	if len(cfg.Plots) == 0 {
		cfg.Plots = []Plot{
			{Hist: "HT", XLabel: "H_T [GeV]", LogY: true, XMin: 0, XMax: 2000, Rebin: 5},
			{Hist: "MET", XLabel: "MET [GeV]", LogY: true, XMin: 0, XMax: 1000, Rebin: 5},
			{Hist: "nJets", XLabel: "N_j", LogY: true},
			{Hist: "nBJets", XLabel: "N_b", LogY: true, XMin: -0.5, XMax: 9.5},
			{Hist: "nTops", XLabel: "N_t", LogY: true},
			{Hist: "fakerateHT2", XLabel: "H_T [GeV]", LogY: true, XMin: 0, XMax: 2000, Rebin: 5},
			{Hist: "fakerateNj2", XLabel: "N_j"},
			{Hist: "fakerateNb2", XLabel: "N_b", LogY: true, XMin: -0.5, XMax: 9.5},
			{Hist: "randomTopPt", XLabel: "rand top p_T [GeV]", Rebin: 5},
			{Hist: "randomTopCandPt", XLabel: "rand top p_T [GeV]", Rebin: 5},
			{Hist: "nVertices", XLabel: "NPV"},
		}
	}
	for i := range cfg.Plots {
		if cfg.Plots[i].YLabel == "" {
			cfg.Plots[i].YLabel = "Events"
		}
	}
}
