package grn

// regionCodes is the set of valid two-digit codes of the subjects of the
// Russian Federation used in state registration numbers. Initialized once,
// never mutated.
var regionCodes = map[string]bool{
	"01": true, "02": true, "03": true, "04": true, "05": true, "06": true,
	"07": true, "08": true, "09": true, "10": true, "11": true, "12": true,
	"13": true, "14": true, "15": true, "16": true, "17": true, "18": true,
	"19": true, "20": true, "21": true, "22": true, "23": true, "24": true,
	"25": true, "26": true, "27": true, "28": true, "29": true, "30": true,
	"31": true, "32": true, "33": true, "34": true, "35": true, "36": true,
	"37": true, "38": true, "39": true, "40": true, "41": true, "42": true,
	"43": true, "44": true, "45": true, "46": true, "47": true, "48": true,
	"49": true, "50": true, "51": true, "52": true, "53": true, "54": true,
	"55": true, "56": true, "57": true, "58": true, "59": true, "60": true,
	"61": true, "62": true, "63": true, "64": true, "65": true, "66": true,
	"67": true, "68": true, "69": true, "70": true, "71": true, "72": true,
	"73": true, "74": true, "75": true, "76": true, "77": true, "78": true,
	"79": true, "83": true, "86": true, "87": true, "89": true, "90": true,
	"91": true, "92": true, "93": true, "94": true, "95": true, "99": true,
}
