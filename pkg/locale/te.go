package locale

// Telugu table. Generic set plus the rice rules (the dominant crop in the
// Telugu belt); everything else falls back per policy.
var tableTE = Table{
	"DEFAULT_SAFE_REASON": "{stage} దశకు వాతావరణం, పొలం పరిస్థితి బాగున్నాయి.",
	"DEFAULT_SAFE_ACTION": "మీ సాధారణ పనులు కొనసాగించండి. వాతావరణం మారాక సంకేతం మళ్లీ చూడండి.",

	"OBSERVED_ISSUE_REASON":      "మీరు తెలిపింది: {issues}. వాతావరణ నియమం సరిపోలలేదు, కానీ పొలం లక్షణాలు గమనించాలి.",
	"OBSERVED_ISSUE_ACTION":      "పొలంలో 4-5 చోట్ల పరిశీలించండి. మొక్కల ఫోటో తీసి స్కాన్ చేయండి లేదా కిసాన్ సహాయక్‌ను అడగండి.",
	"OBSERVED_ISSUE_IMPACT":      "చికిత్స లేని లక్షణాలు ({issues}) {stage} దశలో వ్యాపించవచ్చు.",
	"OBSERVED_ISSUE_CONSEQUENCE": "పురుగు లేదా లోపం ఆలస్యంగా తేలితే దిగుబడి నష్టం.",

	"FINANCIAL_ALERT_REASON":      "విత్తనం, కోత సమయాల్లో ఖర్చు, ధర నిర్ణయాలు భారంగా ఉంటాయి.",
	"FINANCIAL_ALERT_ACTION":      "ఖర్చుకు ముందు పీఎం-కిసాన్ విడత, కేసీసీ పరిమితి, మండి కొనుగోలు తేదీలు చూడండి.",
	"FINANCIAL_ALERT_IMPACT":      "కోతకాగానే అమ్మడం లేదా అప్పుపై ఎరువులు కొనడం 10-20% అదనపు ఖర్చు.",
	"FINANCIAL_ALERT_CONSEQUENCE": "కొనుగోలు తేదీ తప్పితే మద్దతు ధర కంటే తక్కువకు అమ్మాల్సి వస్తుంది.",

	"IGNORE_RISK_HOURS": "{h} గంటల్లో చర్య తీసుకోండి",
	"IGNORE_RISK_DAYS":  "{d} రోజుల్లో చర్య తీసుకోండి",

	"URGENCY_IMMEDIATE":  "తక్షణమే",
	"URGENCY_CAUTION":    "జాగ్రత్త",
	"URGENCY_NORMAL":     "సాధారణం",
	"URGENCY_SUPPORT":    "సంస్థాగత సహాయం",
	"URGENCY_FIELD_RISK": "పొలం ప్రమాదం",

	"RICE_FLOOD_ALERT_REASON":      "చాలా భారీ వర్షం అంచనా (తేమ ఇప్పటికే {humidity}%). వరి పొలాలు త్వరగా మునుగుతాయి.",
	"RICE_FLOOD_ALERT_ACTION":      "ఇప్పుడే కాలువలు తెరవండి; ధాన్యం, ఎరువులు, పంపులు ఎత్తుకు తరలించండి.",
	"RICE_FLOOD_ALERT_IMPACT":      "48 గంటలకు మించి నీరు నిలిస్తే {stage} దశ పంట ఊపిరాడక చనిపోతుంది.",
	"RICE_FLOOD_ALERT_CONSEQUENCE": "మునిగిన భాగాల పూర్తి నష్టం, మట్టి కొట్టుకుపోవడం.",

	"RICE_BLAST_ALERT_REASON":      "{humidity}% తేమ, {temp}°C ఉష్ణోగ్రత {stage} దశలో అగ్గి తెగులుకు అనుకూలం.",
	"RICE_BLAST_ALERT_ACTION":      "ఆకులపై బూడిదరంగు కదురు మచ్చలు చూడండి. కనిపించగానే ట్రైసైక్లజోల్ పిచికారీ చేయండి; యూరియా ఎక్కువ వేయవద్దు.",
	"RICE_BLAST_ALERT_IMPACT":      "పూత దశలో మెడ విరుపు తెగులు గింజ నిండకముందే కంకిని నాశనం చేస్తుంది.",
	"RICE_BLAST_ALERT_CONSEQUENCE": "మెడ కణుపుకు చేరితే రెండు వారాల్లో 30-60% దిగుబడి నష్టం.",

	"RICE_PEST_WARNING_REASON": "వేడి ({temp}°C), తేమ ({humidity}%) వాతావరణం దోమపోటు పెంచుతుంది.",
	"RICE_PEST_WARNING_ACTION": "4-5 చోట్ల మొక్కలు విడదీసి కాండం మొదట్లో దోమలు చూడండి. ఉంటే 3-4 రోజులు పొలం ఆరబెట్టండి.",
	"RICE_PEST_WARNING_IMPACT": "గుంపు స్థిరపడితే హాపర్ బర్న్ గుండ్రని మచ్చలుగా వ్యాపిస్తుంది.",

	"RICE_RAIN_WARNING_REASON": "రాబోయే రోజుల్లో గణనీయమైన వర్షం అవకాశం.",
	"RICE_RAIN_WARNING_ACTION": "కోత వాయిదా వేయండి; కోసిన వరిని కప్పి ఉంచండి. వర్షం ముందు పిచికారీ వద్దు.",
	"RICE_RAIN_WARNING_IMPACT": "14% మించిన తేమ గల ధాన్యం కొనుగోలులో తిరస్కరణ లేదా తగ్గింపు.",

	"RICE_IRRIGATION_WARNING_REASON": "అధిక వేడి ({temp}°C), పొడి గాలి ({humidity}%) వల్ల పొలం త్వరగా ఆరుతోంది.",
	"RICE_IRRIGATION_WARNING_ACTION": "సాయంత్రం నీరు పెట్టండి; 2-3 సెం.మీ నీరు నిలపండి. మధ్యాహ్నం నీరు పెట్టవద్దు.",
	"RICE_IRRIGATION_WARNING_IMPACT": "{stage} దశలో తేమ కొరత పిలకలు, గింజల సంఖ్య తగ్గిస్తుంది.",
}
