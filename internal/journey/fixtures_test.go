package journey

func testStations() []Station {
	return []Station{
		{ID: "AMI", Name: "Amravati", LocalizedName: "अमरावती", HazardClass: HazardNormal, VisualVariants: [2]string{"/med1.svg", "/med2.svg"}},
		{ID: "AK", Name: "Akola", LocalizedName: "अकोला", HazardClass: HazardNormal, VisualVariants: [2]string{"/med1.svg", "/med2.svg"}},
		{ID: "MMR", Name: "Manmad", LocalizedName: "मनमाड", HazardClass: HazardHighRisk, VisualVariants: [2]string{"/hi1.svg", "/hi2.svg"}},
		{ID: "IGP", Name: "Igatpuri", LocalizedName: "इगतपुरी", HazardClass: HazardNormal, VisualVariants: [2]string{"/med1.svg", "/med2.svg"}},
		{ID: "NK", Name: "Nasik", LocalizedName: "नासिक", HazardClass: HazardNormal, VisualVariants: [2]string{"/med1.svg", "/med2.svg"}},
	}
}

func testConfig() Config {
	return Config{
		Stations:       testStations(),
		DefaultVisual:  "/inj.svg",
		TotalDuration:  DefaultTotalDuration,
		StopDuration:   DefaultStopDuration,
		ApproachWindow: DefaultApproachWindow,
	}
}
