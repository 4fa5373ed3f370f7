package locale

// Hindi table. Covers the generic set plus the rice and wheat rules; other
// rule templates fall back per policy.
var tableHI = Table{
	"DEFAULT_SAFE_REASON": "{stage} अवस्था के लिए मौसम और खेत की स्थिति ठीक है।",
	"DEFAULT_SAFE_ACTION": "अपना नियमित कार्यक्रम जारी रखें। अगले मौसम बदलाव के बाद संकेत दोबारा देखें।",

	"OBSERVED_ISSUE_REASON":      "आपने बताया: {issues}। मौसम का कोई नियम नहीं मिला, पर खेत के लक्षणों पर ध्यान दें।",
	"OBSERVED_ISSUE_ACTION":      "खेत में 4-5 जगह जांच करें। प्रभावित पौधों की फोटो लेकर स्कैन करें या किसान सहायक से पूछें।",
	"OBSERVED_ISSUE_IMPACT":      "बिना इलाज के लक्षण ({issues}) {stage} अवस्था में फैल सकते हैं।",
	"OBSERVED_ISSUE_CONSEQUENCE": "कीट या कमी की पुष्टि देर से होने पर उपज का नुकसान।",

	"FINANCIAL_ALERT_REASON":      "बुवाई और कटाई के समय लागत और दाम के फैसले सबसे भारी पड़ते हैं।",
	"FINANCIAL_ALERT_ACTION":      "खर्च से पहले पीएम-किसान किस्त, केसीसी सीमा और मंडी खरीद की तारीखें देख लें।",
	"FINANCIAL_ALERT_IMPACT":      "कटाई पर तुरंत बेचना या उधार पर खाद लेना आम तौर पर 10-20% महंगा पड़ता है।",
	"FINANCIAL_ALERT_CONSEQUENCE": "खरीद की तारीख चूकने पर एमएसपी से नीचे बेचना पड़ता है।",

	"IGNORE_RISK_HOURS": "{h} घंटे के भीतर कार्रवाई करें",
	"IGNORE_RISK_DAYS":  "{d} दिन के भीतर कार्रवाई करें",

	"URGENCY_IMMEDIATE":  "तुरंत",
	"URGENCY_CAUTION":    "सावधानी",
	"URGENCY_NORMAL":     "सामान्य",
	"URGENCY_SUPPORT":    "संस्थागत सहायता",
	"URGENCY_FIELD_RISK": "खेत जोखिम",

	"RICE_FLOOD_ALERT_REASON":      "बहुत भारी बारिश का अनुमान है (नमी {humidity}%)। धान के खेत जल्दी भर जाते हैं।",
	"RICE_FLOOD_ALERT_ACTION":      "अभी निकासी नालियां खोलें और अनाज, खाद, पंप ऊंची जगह रखें।",
	"RICE_FLOOD_ALERT_IMPACT":      "48 घंटे से ज्यादा पानी भरा रहने पर {stage} अवस्था की फसल दम तोड़ देती है।",
	"RICE_FLOOD_ALERT_CONSEQUENCE": "डूबे हिस्सों का पूरा नुकसान और मिट्टी का कटाव।",

	"RICE_BLAST_ALERT_REASON":      "{humidity}% नमी और {temp}°C तापमान {stage} में ब्लास्ट फफूंद के लिए अनुकूल है।",
	"RICE_BLAST_ALERT_ACTION":      "पत्तियों पर धूसर तकली-आकार के धब्बे देखें। पहले लक्षण पर ट्राइसाइक्लाजोल छिड़कें; ज्यादा यूरिया न दें।",
	"RICE_BLAST_ALERT_IMPACT":      "फूल अवस्था में गर्दन तोड़ ब्लास्ट बाली को दाना भरने से पहले खत्म कर देता है।",
	"RICE_BLAST_ALERT_CONSEQUENCE": "गर्दन तक पहुंचने पर दो हफ्ते में 30-60% उपज का नुकसान।",

	"RICE_PEST_WARNING_REASON": "गर्म ({temp}°C) और नम ({humidity}%) मौसम भूरा फुदका बढ़ाता है।",
	"RICE_PEST_WARNING_ACTION": "4-5 जगह पौधे हटा कर तने के पास फुदके देखें। मिलने पर 3-4 दिन खेत सुखाएं।",
	"RICE_PEST_WARNING_IMPACT": "कॉलोनी बनने पर हॉपर बर्न गोल चकत्तों में फैलता है।",

	"RICE_RAIN_WARNING_REASON": "आने वाले दिनों में अच्छी बारिश की संभावना है।",
	"RICE_RAIN_WARNING_ACTION": "कटाई टालें और कटा धान ढक कर रखें। बारिश से पहले छिड़काव न करें।",
	"RICE_RAIN_WARNING_IMPACT": "14% से ज्यादा नमी वाला दाना खरीद में कट जाता है।",

	"RICE_IRRIGATION_WARNING_REASON": "तेज गर्मी ({temp}°C) और सूखी हवा ({humidity}%) से खेत जल्दी सूख रहा है।",
	"RICE_IRRIGATION_WARNING_ACTION": "शाम को सिंचाई करें और 2-3 सेमी पानी बनाए रखें। दोपहर में सिंचाई न करें।",
	"RICE_IRRIGATION_WARNING_IMPACT": "{stage} में नमी की कमी कल्ले और दाने घटाती है।",

	"WHEAT_RUST_ALERT_REASON":      "ठंडा-नम मौसम ({temp}°C, {humidity}%) {stage} में पीला रतुआ फैलाता है।",
	"WHEAT_RUST_ALERT_ACTION":      "पत्तियों पर पीली धारियां देखें। दिखते ही प्रोपिकोनाजोल छिड़कें और पड़ोसी किसानों को बताएं।",
	"WHEAT_RUST_ALERT_IMPACT":      "रतुआ हवा से दिनों में खेत-दर-खेत फैलता है।",
	"WHEAT_RUST_ALERT_CONSEQUENCE": "ध्वज पत्ती तक पहुंचने पर 40% तक दाना सिकुड़ सकता है।",

	"WHEAT_DROUGHT_ALERT_REASON":      "भीषण गर्मी ({temp}°C), सूखी हवा और बारिश के आसार नहीं।",
	"WHEAT_DROUGHT_ALERT_ACTION":      "अभी हल्की बचाव सिंचाई दें; पानी कम हो तो कतारों के बीच पलवार करें।",
	"WHEAT_DROUGHT_ALERT_IMPACT":      "गर्मी और नमी की कमी से फसल जल्दी पकती है, दाना पतला रहता है।",
	"WHEAT_DROUGHT_ALERT_CONSEQUENCE": "मुरझान बिंदु पार होने पर नुकसान वापस नहीं होता।",

	"WHEAT_RAIN_HARVEST_WARNING_REASON": "आपकी कटाई के समय बारिश का अनुमान है।",
	"WHEAT_RAIN_HARVEST_WARNING_ACTION": "दाना पका हो तो कटाई पहले करें; कटी उपज तिरपाल से ढकें।",
	"WHEAT_RAIN_HARVEST_WARNING_IMPACT": "फसल गिरने और दाना बदरंग होने से मंडी भाव गिरता है।",

	"WHEAT_PEST_WARNING_REASON": "हल्का नम मौसम ({temp}°C, {humidity}%) माहू (चेपा) बढ़ा रहा है।",
	"WHEAT_PEST_WARNING_ACTION": "पत्तियों के नीचे देखें। 5 प्रति कल्ला से ज्यादा होने पर ही नीम तेल या इमिडाक्लोप्रिड छिड़कें।",
	"WHEAT_PEST_WARNING_IMPACT": "{stage} में माहू रस चूस कर विषाणु रोग फैलाता है।",

	"WHEAT_POST_HARVEST_WARNING_REASON": "{humidity}% नमी भंडारण के लिए ज्यादा है।",
	"WHEAT_POST_HARVEST_WARNING_ACTION": "दाना धूप में 12% नमी से नीचे सुखा कर ही बोरी भरें। बोरियां लकड़ी पर रखें, जमीन पर नहीं।",
	"WHEAT_POST_HARVEST_WARNING_IMPACT": "नम भंडारण में हफ्तों में घुन और फफूंद लग जाती है।",
}
