package catalog

// Page copy is kept as markdown and rendered once at startup.

const aboutMarkdown = `Welcome to **Wave House**, a 24-hour recording studio located in the heart of Hollywood, CA.
Whether you're cutting vocals, producing tracks, or dialing in the perfect mix, our studio delivers
industry-level sound with a creative edge.`

var highlights = []Item{
	{Icon: "clock", Title: "24/7 Access", Detail: "Book anytime, day or night"},
	{Icon: "map-pin", Title: "Hollywood, CA", Detail: "Heart of the music industry"},
	{Icon: "users", Title: "Max 6 People", Detail: "Perfect for small teams"},
	{Icon: "headphones", Title: "Pro Equipment", Detail: "Industry-standard gear"},
}

var bookingSteps = []string{
	"Choose your session type",
	"Select your time (4hr minimum)",
	"Pay deposit to confirm",
	"Pay balance before session to receive door code",
}

var gear = []Item{
	{Icon: "volume", Title: "DAW", Detail: "Pro Tools"},
	{Icon: "mic", Title: "Microphone", Detail: "Neumann U-87"},
	{Icon: "music", Title: "Preamp", Detail: "Neve 1073"},
	{Icon: "volume", Title: "Compressor", Detail: "Tube-Tech CL 1B"},
	{Icon: "headphones", Title: "Monitors", Detail: "Yamaha NS-10s & Tannoy"},
	{Icon: "music", Title: "Plugins", Detail: "Industry-Standard Suite"},
}

const testimonial = `"That vocal chain is CRAZY. Worth every penny." *Local Producer*`

var ruleGroups = []RuleGroup{
	{
		Title: "General Rules",
		Rules: []Item{
			{Icon: "users", Title: "Max Occupancy: 6 People", Detail: "Strictly enforced for safety and comfort"},
			{Icon: "no-smoking", Title: "No Cigarettes", Detail: "$200 automatic cleaning fee"},
			{Icon: "alert", Title: "No Listening Parties", Detail: "Without prior approval"},
			{Icon: "car", Title: "Parking", Detail: "Secure parking for up to 3 cars"},
		},
	},
	{
		Title: "Booking Policies",
		Rules: []Item{
			{Icon: "user", Title: "Book for Yourself Only", Detail: "Non-transferable bookings"},
			{Icon: "drive", Title: "We Don't Keep Your Files", Detail: "Bring your own drive"},
			{Icon: "scale", Title: "Liability", Detail: "Booking party responsible for all equipment"},
			{Icon: "x", Title: "Cancellation Policy", Detail: "48hr notice required, no refunds"},
		},
	},
}

const overtimeMarkdown = `- **No Engineer:** $25/hr for overtime (billed in 30-min increments)
- **With Engineer:** overtime billed at that engineer's hourly rate`

var contactInfo = Contact{
	Location:  "Hollywood, CA",
	Phone:     "Contact for number",
	Email:     "letswork@wavehousela.com",
	Instagram: "https://instagram.com/wavehousela",
	Twitter:   "https://twitter.com/wavehousela",
}

// images lists the page images by name, in the order they appear.
var images = []string{"hero", "control-room", "microphone", "equipment"}
