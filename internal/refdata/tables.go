package refdata

// Indian states and union territories served by the dashboard.
var indianStates = []State{
	{Code: "AN", Name: "Andaman and Nicobar Islands", NameHi: "अंडमान और निकोबार द्वीप समूह"},
	{Code: "AP", Name: "Andhra Pradesh", NameHi: "आंध्र प्रदेश"},
	{Code: "AR", Name: "Arunachal Pradesh", NameHi: "अरुणाचल प्रदेश"},
	{Code: "AS", Name: "Assam", NameHi: "असम"},
	{Code: "BR", Name: "Bihar", NameHi: "बिहार"},
	{Code: "CH", Name: "Chandigarh", NameHi: "चंडीगढ़"},
	{Code: "CT", Name: "Chhattisgarh", NameHi: "छत्तीसगढ़"},
	{Code: "DN", Name: "Dadra and Nagar Haveli and Daman and Diu", NameHi: "दादरा और नगर हवेली और दमन और दीव"},
	{Code: "DL", Name: "Delhi", NameHi: "दिल्ली"},
	{Code: "GA", Name: "Goa", NameHi: "गोवा"},
	{Code: "GJ", Name: "Gujarat", NameHi: "गुजरात"},
	{Code: "HR", Name: "Haryana", NameHi: "हरियाणा"},
	{Code: "HP", Name: "Himachal Pradesh", NameHi: "हिमाचल प्रदेश"},
	{Code: "JK", Name: "Jammu and Kashmir", NameHi: "जम्मू और कश्मीर"},
	{Code: "JH", Name: "Jharkhand", NameHi: "झारखंड"},
	{Code: "KA", Name: "Karnataka", NameHi: "कर्नाटक"},
	{Code: "KL", Name: "Kerala", NameHi: "केरल"},
	{Code: "LA", Name: "Ladakh", NameHi: "लद्दाख"},
	{Code: "LD", Name: "Lakshadweep", NameHi: "लक्षद्वीप"},
	{Code: "MP", Name: "Madhya Pradesh", NameHi: "मध्य प्रदेश"},
	{Code: "MH", Name: "Maharashtra", NameHi: "महाराष्ट्र"},
	{Code: "MN", Name: "Manipur", NameHi: "मणिपुर"},
	{Code: "ML", Name: "Meghalaya", NameHi: "मेघालय"},
	{Code: "MZ", Name: "Mizoram", NameHi: "मिजोरम"},
	{Code: "NL", Name: "Nagaland", NameHi: "नागालैंड"},
	{Code: "OR", Name: "Odisha", NameHi: "ओडिशा"},
	{Code: "PY", Name: "Puducherry", NameHi: "पुडुचेरी"},
	{Code: "PB", Name: "Punjab", NameHi: "पंजाब"},
	{Code: "RJ", Name: "Rajasthan", NameHi: "राजस्थान"},
	{Code: "SK", Name: "Sikkim", NameHi: "सिक्किम"},
	{Code: "TN", Name: "Tamil Nadu", NameHi: "तमिलनाडु"},
	{Code: "TG", Name: "Telangana", NameHi: "तेलंगाना"},
	{Code: "TR", Name: "Tripura", NameHi: "त्रिपुरा"},
	{Code: "UP", Name: "Uttar Pradesh", NameHi: "उत्तर प्रदेश"},
	{Code: "UT", Name: "Uttarakhand", NameHi: "उत्तराखंड"},
	{Code: "WB", Name: "West Bengal", NameHi: "पश्चिम बंगाल"},
}

// District reference tables per state. UP carries the full seed list;
// the remaining states cover their major districts.
var stateDistricts = map[string][]District{
	"UP": {
		{Code: "UP01", Name: "Agra", NameHi: "आगरा", Latitude: 27.1767, Longitude: 78.0081},
		{Code: "UP02", Name: "Aligarh", NameHi: "अलीगढ़", Latitude: 27.8974, Longitude: 78.0880},
		{Code: "UP03", Name: "Allahabad", NameHi: "इलाहाबाद", Latitude: 25.4358, Longitude: 81.8463},
		{Code: "UP04", Name: "Ambedkar Nagar", NameHi: "अंबेडकर नगर", Latitude: 26.4050, Longitude: 82.6986},
		{Code: "UP05", Name: "Amethi", NameHi: "अमेठी", Latitude: 26.1544, Longitude: 81.8084},
		{Code: "UP06", Name: "Amroha", NameHi: "अमरोहा", Latitude: 28.9031, Longitude: 78.4675},
		{Code: "UP07", Name: "Auraiya", NameHi: "औरैया", Latitude: 26.4667, Longitude: 79.5167},
		{Code: "UP08", Name: "Azamgarh", NameHi: "आजमगढ़", Latitude: 26.0686, Longitude: 83.1840},
		{Code: "UP09", Name: "Baghpat", NameHi: "बागपत", Latitude: 28.9472, Longitude: 77.2195},
		{Code: "UP10", Name: "Bahraich", NameHi: "बहराइच", Latitude: 27.5742, Longitude: 81.5947},
		{Code: "UP11", Name: "Ballia", NameHi: "बलिया", Latitude: 25.7648, Longitude: 84.1496},
		{Code: "UP12", Name: "Balrampur", NameHi: "बलरामपुर", Latitude: 27.4308, Longitude: 82.1807},
		{Code: "UP13", Name: "Banda", NameHi: "बांदा", Latitude: 25.4762, Longitude: 80.3361},
		{Code: "UP14", Name: "Barabanki", NameHi: "बाराबंकी", Latitude: 26.9245, Longitude: 81.1840},
		{Code: "UP15", Name: "Bareilly", NameHi: "बरेली", Latitude: 28.3670, Longitude: 79.4304},
		{Code: "UP16", Name: "Basti", NameHi: "बस्ती", Latitude: 26.7850, Longitude: 82.7392},
		{Code: "UP17", Name: "Bijnor", NameHi: "बिजनौर", Latitude: 29.3731, Longitude: 78.1331},
		{Code: "UP18", Name: "Budaun", NameHi: "बदायूं", Latitude: 28.0330, Longitude: 79.1333},
		{Code: "UP19", Name: "Bulandshahr", NameHi: "बुलंदशहर", Latitude: 28.4067, Longitude: 77.8498},
		{Code: "UP20", Name: "Chandauli", NameHi: "चंदौली", Latitude: 25.2667, Longitude: 83.2667},
		{Code: "UP21", Name: "Chitrakoot", NameHi: "चित्रकूट", Latitude: 25.2000, Longitude: 80.9000},
		{Code: "UP22", Name: "Deoria", NameHi: "देवरिया", Latitude: 26.5024, Longitude: 83.7791},
		{Code: "UP23", Name: "Etah", NameHi: "एटा", Latitude: 27.5639, Longitude: 78.6628},
		{Code: "UP24", Name: "Etawah", NameHi: "इटावा", Latitude: 26.7855, Longitude: 79.0215},
		{Code: "UP25", Name: "Faizabad", NameHi: "फैजाबाद", Latitude: 26.7750, Longitude: 82.1496},
		{Code: "UP26", Name: "Farrukhabad", NameHi: "फर्रुखाबाद", Latitude: 27.3882, Longitude: 79.5804},
		{Code: "UP27", Name: "Fatehpur", NameHi: "फतेहपुर", Latitude: 25.9308, Longitude: 80.8122},
		{Code: "UP28", Name: "Firozabad", NameHi: "फिरोजाबाद", Latitude: 27.1484, Longitude: 78.3957},
		{Code: "UP29", Name: "Gautam Buddha Nagar", NameHi: "गौतम बुद्ध नगर", Latitude: 28.3587, Longitude: 77.5186},
		{Code: "UP30", Name: "Ghaziabad", NameHi: "गाजियाबाद", Latitude: 28.6692, Longitude: 77.4538},
		{Code: "UP31", Name: "Ghazipur", NameHi: "गाजीपुर", Latitude: 25.5881, Longitude: 83.5778},
		{Code: "UP32", Name: "Gonda", NameHi: "गोंडा", Latitude: 27.1333, Longitude: 81.9667},
		{Code: "UP33", Name: "Gorakhpur", NameHi: "गोरखपुर", Latitude: 26.7606, Longitude: 83.3732},
		{Code: "UP34", Name: "Hamirpur", NameHi: "हमीरपुर", Latitude: 25.9565, Longitude: 80.1482},
		{Code: "UP35", Name: "Hapur", NameHi: "हापुड़", Latitude: 28.7293, Longitude: 77.7758},
		{Code: "UP36", Name: "Hardoi", NameHi: "हरदोई", Latitude: 27.3965, Longitude: 80.1251},
		{Code: "UP37", Name: "Hathras", NameHi: "हाथरस", Latitude: 27.5952, Longitude: 78.0499},
		{Code: "UP38", Name: "Jalaun", NameHi: "जालौन", Latitude: 26.1447, Longitude: 79.3376},
		{Code: "UP39", Name: "Jaunpur", NameHi: "जौनपुर", Latitude: 25.7462, Longitude: 82.6841},
		{Code: "UP40", Name: "Jhansi", NameHi: "झांसी", Latitude: 25.4486, Longitude: 78.5696},
		{Code: "UP41", Name: "Kannauj", NameHi: "कन्नौज", Latitude: 27.0514, Longitude: 79.9142},
		{Code: "UP42", Name: "Kanpur Dehat", NameHi: "कानपुर देहात", Latitude: 26.4675, Longitude: 79.8655},
		{Code: "UP43", Name: "Kanpur Nagar", NameHi: "कानपुर नगर", Latitude: 26.4499, Longitude: 80.3319},
		{Code: "UP44", Name: "Kasganj", NameHi: "कासगंज", Latitude: 27.8088, Longitude: 78.6443},
		{Code: "UP45", Name: "Kaushambi", NameHi: "कौशाम्बी", Latitude: 25.5316, Longitude: 81.3784},
		{Code: "UP46", Name: "Kushinagar", NameHi: "कुशीनगर", Latitude: 26.7420, Longitude: 83.8891},
		{Code: "UP47", Name: "Lakhimpur Kheri", NameHi: "लखीमपुर खीरी", Latitude: 27.9474, Longitude: 80.7780},
		{Code: "UP48", Name: "Lalitpur", NameHi: "ललितपुर", Latitude: 24.6880, Longitude: 78.4122},
		{Code: "UP49", Name: "Lucknow", NameHi: "लखनऊ", Latitude: 26.8467, Longitude: 80.9462},
		{Code: "UP50", Name: "Maharajganj", NameHi: "महाराजगंज", Latitude: 27.1441, Longitude: 83.5599},
	},
	"MH": {
		{Code: "MH01", Name: "Mumbai", NameHi: "मुंबई", Latitude: 19.0760, Longitude: 72.8777},
		{Code: "MH02", Name: "Pune", NameHi: "पुणे", Latitude: 18.5204, Longitude: 73.8567},
		{Code: "MH03", Name: "Nagpur", NameHi: "नागपुर", Latitude: 21.1458, Longitude: 79.0882},
		{Code: "MH04", Name: "Nashik", NameHi: "नासिक", Latitude: 19.9975, Longitude: 73.7898},
		{Code: "MH05", Name: "Thane", NameHi: "ठाणे", Latitude: 19.2183, Longitude: 72.9781},
	},
	"KA": {
		{Code: "KA01", Name: "Bengaluru Urban", NameHi: "बेंगलुरु शहरी", Latitude: 12.9716, Longitude: 77.5946},
		{Code: "KA02", Name: "Mysuru", NameHi: "मैसूरु", Latitude: 12.2958, Longitude: 76.6394},
		{Code: "KA03", Name: "Mangaluru", NameHi: "मंगलुरु", Latitude: 12.9141, Longitude: 74.8560},
		{Code: "KA04", Name: "Hubli", NameHi: "हुबली", Latitude: 15.3647, Longitude: 75.1240},
		{Code: "KA05", Name: "Belgaum", NameHi: "बेलगाम", Latitude: 15.8497, Longitude: 74.4977},
	},
	"TN": {
		{Code: "TN01", Name: "Chennai", NameHi: "चेन्नई", Latitude: 13.0827, Longitude: 80.2707},
		{Code: "TN02", Name: "Coimbatore", NameHi: "कोयंबटूर", Latitude: 11.0168, Longitude: 76.9558},
		{Code: "TN03", Name: "Madurai", NameHi: "मदुरै", Latitude: 9.9252, Longitude: 78.1198},
		{Code: "TN04", Name: "Tiruchirappalli", NameHi: "तिरुचिरापल्ली", Latitude: 10.7905, Longitude: 78.7047},
		{Code: "TN05", Name: "Salem", NameHi: "सेलम", Latitude: 11.6643, Longitude: 78.1460},
	},
	"RJ": {
		{Code: "RJ01", Name: "Jaipur", NameHi: "जयपुर", Latitude: 26.9124, Longitude: 75.7873},
		{Code: "RJ02", Name: "Jodhpur", NameHi: "जोधपुर", Latitude: 26.2389, Longitude: 73.0243},
		{Code: "RJ03", Name: "Udaipur", NameHi: "उदयपुर", Latitude: 24.5854, Longitude: 73.7125},
		{Code: "RJ04", Name: "Kota", NameHi: "कोटा", Latitude: 25.2138, Longitude: 75.8648},
		{Code: "RJ05", Name: "Bikaner", NameHi: "बीकानेर", Latitude: 28.0229, Longitude: 73.3119},
	},
	"GJ": {
		{Code: "GJ01", Name: "Ahmedabad", NameHi: "अहमदाबाद", Latitude: 23.0225, Longitude: 72.5714},
		{Code: "GJ02", Name: "Surat", NameHi: "सूरत", Latitude: 21.1702, Longitude: 72.8311},
		{Code: "GJ03", Name: "Vadodara", NameHi: "वडोदरा", Latitude: 22.3072, Longitude: 73.1812},
		{Code: "GJ04", Name: "Rajkot", NameHi: "राजकोट", Latitude: 22.3039, Longitude: 70.8022},
		{Code: "GJ05", Name: "Gandhinagar", NameHi: "गांधीनगर", Latitude: 23.2156, Longitude: 72.6369},
	},
	"WB": {
		{Code: "WB01", Name: "Kolkata", NameHi: "कोलकाता", Latitude: 22.5726, Longitude: 88.3639},
		{Code: "WB02", Name: "Howrah", NameHi: "हावड़ा", Latitude: 22.5958, Longitude: 88.2636},
		{Code: "WB03", Name: "Darjeeling", NameHi: "दार्जिलिंग", Latitude: 27.0410, Longitude: 88.2663},
		{Code: "WB04", Name: "Siliguri", NameHi: "सिलीगुड़ी", Latitude: 26.7271, Longitude: 88.3953},
		{Code: "WB05", Name: "Durgapur", NameHi: "दुर्गापुर", Latitude: 23.5204, Longitude: 87.3119},
	},
	"BR": {
		{Code: "BR01", Name: "Patna", NameHi: "पटना", Latitude: 25.5941, Longitude: 85.1376},
		{Code: "BR02", Name: "Gaya", NameHi: "गया", Latitude: 24.7955, Longitude: 84.9994},
		{Code: "BR03", Name: "Bhagalpur", NameHi: "भागलपुर", Latitude: 25.2425, Longitude: 86.9842},
		{Code: "BR04", Name: "Muzaffarpur", NameHi: "मुजफ्फरपुर", Latitude: 26.1225, Longitude: 85.3906},
		{Code: "BR05", Name: "Darbhanga", NameHi: "दरभंगा", Latitude: 26.1542, Longitude: 85.8918},
	},
	"MP": {
		{Code: "MP01", Name: "Bhopal", NameHi: "भोपाल", Latitude: 23.2599, Longitude: 77.4126},
		{Code: "MP02", Name: "Indore", NameHi: "इंदौर", Latitude: 22.7196, Longitude: 75.8577},
		{Code: "MP03", Name: "Gwalior", NameHi: "ग्वालियर", Latitude: 26.2183, Longitude: 78.1828},
		{Code: "MP04", Name: "Jabalpur", NameHi: "जबलपुर", Latitude: 23.1815, Longitude: 79.9864},
		{Code: "MP05", Name: "Ujjain", NameHi: "उज्जैन", Latitude: 23.1765, Longitude: 75.7885},
	},
}
