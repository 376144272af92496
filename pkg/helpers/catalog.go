package helpers

// CommonInterests are the interest tags offered on profiles and groups.
var CommonInterests = []string{
	"Playdates",
	"Parks & Outdoors",
	"Books & Reading",
	"Arts & Crafts",
	"Music & Dance",
	"Sports & Fitness",
	"STEM & Science",
	"Food & Cooking",
	"Cultural Events",
	"Parenting Support",
	"Weekend Trips",
	"Photography",
	"Gaming",
	"Volunteering",
}

// Neighborhoods are the Bengaluru localities groups are listed under.
var Neighborhoods = []string{
	"Indiranagar",
	"Koramangala",
	"Whitefield",
	"JP Nagar",
	"Yelahanka",
	"HSR Layout",
	"Malleshwaram",
	"Jayanagar",
	"Sarjapur Road",
	"Electronic City",
	"Marathahalli",
	"Hebbal",
}
