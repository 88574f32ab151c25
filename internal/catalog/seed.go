package catalog

import (
	"github.com/google/uuid"

	"jersey-quiz-service/internal/domain"
)

// namespace keeps player IDs stable across every backend that seeds the roster.
var namespace = uuid.MustParse("6f1d9a52-3c1e-4b8e-9d7a-2a5c0b7e4f11")

// PlayerID derives the stable identifier for a roster name.
func PlayerID(name string) string {
	return uuid.NewSHA1(namespace, []byte(name)).String()
}

// Seed returns a fresh copy of the built-in roster.
func Seed() []domain.Player {
	players := make([]domain.Player, 0, len(roster))
	for _, e := range roster {
		players = append(players, domain.Player{
			ID:         PlayerID(e.name),
			Name:       e.name,
			Jersey:     e.jersey,
			Hint:       e.hint,
			Team:       e.team,
			Difficulty: e.tier,
		})
	}
	return players
}

type entry struct {
	name   string
	jersey int
	hint   string
	team   string
	tier   domain.Tier
}

var roster = []entry{
	// Household names, levels 1-5.
	{"MS Dhoni", 7, "Captain Cool - Known for his calm finishing and helicopter shot", "India", domain.TierEasy},
	{"Virat Kohli", 18, "Run machine and former Indian captain, known for his aggressive batting", "India", domain.TierEasy},
	{"Rohit Sharma", 45, "Hitman - Known for his elegant stroke play and multiple double centuries", "India", domain.TierEasy},
	{"AB de Villiers", 17, "Mr. 360 - Known for his innovative shots all around the ground", "South Africa", domain.TierEasy},
	{"Chris Gayle", 45, "Universe Boss - Known for his explosive batting", "West Indies", domain.TierEasy},
	{"Steve Smith", 49, "Former Australian captain with unorthodox batting technique", "Australia", domain.TierEasy},
	{"David Warner", 31, "Aggressive left-handed opener known for his quick scoring", "Australia", domain.TierEasy},
	{"Kane Williamson", 22, "New Zealand captain known for his calm demeanor", "New Zealand", domain.TierEasy},
	{"Joe Root", 66, "Former English captain and classical batsman", "England", domain.TierEasy},
	{"Ben Stokes", 55, "All-rounder known for his match-winning performances", "England", domain.TierEasy},
	{"Babar Azam", 56, "Pakistani captain known for his elegant batting", "Pakistan", domain.TierEasy},
	{"Lasith Malinga", 99, "Slinga Malinga - Known for his yorkers and action", "Sri Lanka", domain.TierEasy},
	{"Shakib Al Hasan", 75, "All-rounder and former Bangladeshi captain", "Bangladesh", domain.TierEasy},
	{"Andre Russell", 12, "All-rounder known for his explosive batting and bowling", "West Indies", domain.TierEasy},
	{"Hardik Pandya", 33, "All-rounder known for his explosive batting and bowling", "India", domain.TierEasy},
	{"Jasprit Bumrah", 93, "Yorker specialist and India's premier fast bowler", "India", domain.TierEasy},
	{"Trent Boult", 18, "Left-arm fast bowler known for his swing", "New Zealand", domain.TierEasy},
	{"Jos Buttler", 63, "Wicket-keeper known for his explosive batting", "England", domain.TierEasy},
	{"Kagiso Rabada", 25, "Fast bowler known for his pace and aggression", "South Africa", domain.TierEasy},
	{"Rashid Khan", 19, "Afghan leg-spinner known worldwide", "Afghanistan", domain.TierEasy},
	{"Yuvraj Singh", 12, "2011 World Cup hero known for his six sixes", "India", domain.TierEasy},
	{"Suresh Raina", 3, "Mr. IPL - Known for his consistent performances in IPL", "India", domain.TierEasy},
	{"Kieron Pollard", 55, "All-rounder known for his power hitting", "West Indies", domain.TierEasy},
	{"Glenn Maxwell", 32, "Big Show - Known for his innovative shots and part-time spin", "Australia", domain.TierEasy},
	{"Faf du Plessis", 18, "Former South African captain known for his technique", "South Africa", domain.TierEasy},

	// Regular internationals, levels 6-12.
	{"KL Rahul", 1, "Stylish opener and wicket-keeper batsman", "India", domain.TierMedium},
	{"Rishabh Pant", 17, "Young wicket-keeper known for his aggressive batting", "India", domain.TierMedium},
	{"Ravindra Jadeja", 8, "Sir Jadeja - All-rounder known for his fielding and left-arm spin", "India", domain.TierMedium},
	{"Shikhar Dhawan", 25, "Gabbar - Aggressive left-handed opener", "India", domain.TierMedium},
	{"Pat Cummins", 30, "Australian captain and fast bowler known for his pace", "Australia", domain.TierMedium},
	{"Aaron Finch", 5, "Former Australian captain and explosive opener", "Australia", domain.TierMedium},
	{"Mitchell Starc", 56, "Left-arm fast bowler known for his yorkers", "Australia", domain.TierMedium},
	{"Eoin Morgan", 16, "Former Irish-English captain known for his leadership", "England", domain.TierMedium},
	{"Jonny Bairstow", 21, "Wicket-keeper batsman known for his aggressive style", "England", domain.TierMedium},
	{"Quinton de Kock", 21, "Left-handed wicket-keeper batsman", "South Africa", domain.TierMedium},
	{"David Miller", 9, "Killer Miller - Known for his finishing abilities", "South Africa", domain.TierMedium},
	{"Mohammad Rizwan", 12, "Wicket-keeper batsman known for his consistency", "Pakistan", domain.TierMedium},
	{"Shaheen Afridi", 10, "Left-arm fast bowler known for his swing", "Pakistan", domain.TierMedium},
	{"Martin Guptill", 31, "Aggressive opener known for his power hitting", "New Zealand", domain.TierMedium},
	{"Ross Taylor", 4, "Middle-order batsman and former captain", "New Zealand", domain.TierMedium},
	{"Angelo Mathews", 6, "All-rounder and former Sri Lankan captain", "Sri Lanka", domain.TierMedium},
	{"Mushfiqur Rahim", 15, "Wicket-keeper batsman and experienced player", "Bangladesh", domain.TierMedium},
	{"Tamim Iqbal", 28, "Left-handed opener and experienced batsman", "Bangladesh", domain.TierMedium},
	{"Jason Holder", 8, "All-rounder and former West Indies captain", "West Indies", domain.TierMedium},
	{"Nicholas Pooran", 2, "Wicket-keeper batsman known for his aggressive style", "West Indies", domain.TierMedium},
	{"Yuzvendra Chahal", 3, "Leg-spinner known for his wicket-taking ability", "India", domain.TierMedium},
	{"Mohammad Nabi", 10, "Afghan all-rounder and captain", "Afghanistan", domain.TierMedium},
	{"Harbhajan Singh", 6, "Turbanator - Off-spinner known for his doosra", "India", domain.TierMedium},
	{"Gautam Gambhir", 5, "Former Indian opener and captain", "India", domain.TierMedium},
	{"Dwayne Bravo", 47, "All-rounder known for his death bowling", "West Indies", domain.TierMedium},

	// Squad players, levels 13-18.
	{"Josh Hazlewood", 58, "Consistent fast bowler with excellent line and length", "Australia", domain.TierHard},
	{"Adam Zampa", 66, "Leg-spinner and key wicket-taker in limited overs", "Australia", domain.TierHard},
	{"Marcus Stoinis", 59, "All-rounder known for his power hitting", "Australia", domain.TierHard},
	{"Alex Carey", 62, "Wicket-keeper batsman known for his consistent performances", "Australia", domain.TierHard},
	{"Jason Roy", 10, "Aggressive opener known for his quick starts", "England", domain.TierHard},
	{"Liam Livingstone", 42, "All-rounder known for his big hitting ability", "England", domain.TierHard},
	{"Jofra Archer", 22, "Fast bowler known for his pace and variations", "England", domain.TierHard},
	{"Adil Rashid", 19, "Leg-spinner and key bowler in limited overs", "England", domain.TierHard},
	{"Mark Wood", 91, "Express fast bowler known for his raw pace", "England", domain.TierHard},
	{"Aiden Markram", 4, "Right-handed batsman and part-time off-spinner", "South Africa", domain.TierHard},
	{"Lungi Ngidi", 5, "Fast bowler known for his bounce and pace", "South Africa", domain.TierHard},
	{"Rassie van der Dussen", 3, "Middle-order batsman known for his consistency", "South Africa", domain.TierHard},
	{"Anrich Nortje", 16, "Express fast bowler with raw pace", "South Africa", domain.TierHard},
	{"Tabraiz Shamsi", 99, "Left-arm wrist spinner known for his variations", "South Africa", domain.TierHard},
	{"Fakhar Zaman", 19, "Left-handed opener known for his aggressive batting", "Pakistan", domain.TierHard},
	{"Mohammad Hafeez", 6, "All-rounder known as 'The Professor'", "Pakistan", domain.TierHard},
	{"Shadab Khan", 18, "Leg-spinner and lower-order batsman", "Pakistan", domain.TierHard},
	{"Hasan Ali", 1, "Fast bowler known for his celebratory style", "Pakistan", domain.TierHard},
	{"Tom Latham", 2, "Wicket-keeper batsman and opening option", "New Zealand", domain.TierHard},
	{"Tim Southee", 38, "Fast bowler and experienced campaigner", "New Zealand", domain.TierHard},
	{"Mitchell Santner", 12, "Left-arm spinner and lower-order batsman", "New Zealand", domain.TierHard},
	{"Devon Conway", 17, "Left-handed batsman who can keep wickets", "New Zealand", domain.TierHard},
	{"Kyle Jamieson", 8, "Tall fast bowler known for his bounce", "New Zealand", domain.TierHard},
	{"Ish Sodhi", 14, "Leg-spinner known for his wicket-taking ability", "New Zealand", domain.TierHard},
	{"Kusal Mendis", 13, "Right-handed batsman known for his stroke play", "Sri Lanka", domain.TierHard},
	{"Dhananjaya de Silva", 12, "All-rounder known for his off-spin and batting", "Sri Lanka", domain.TierHard},
	{"Thisara Perera", 77, "All-rounder known for his power hitting", "Sri Lanka", domain.TierHard},
	{"Wanindu Hasaranga", 8, "Leg-spinner and handy lower-order batsman", "Sri Lanka", domain.TierHard},
	{"Mahmudullah", 30, "All-rounder known for his finishing abilities", "Bangladesh", domain.TierHard},
	{"Mustafizur Rahman", 90, "Left-arm fast bowler known as 'The Fizz'", "Bangladesh", domain.TierHard},
	{"Litton Das", 9, "Wicket-keeper batsman known for his technique", "Bangladesh", domain.TierHard},
	{"Evin Lewis", 20, "Left-handed opener known for his power hitting", "West Indies", domain.TierHard},
	{"Shimron Hetmyer", 11, "Left-handed batsman known for his stroke play", "West Indies", domain.TierHard},
	{"Sunil Narine", 74, "Spinner known for his mystery deliveries", "West Indies", domain.TierHard},
	{"Alzarri Joseph", 5, "Fast bowler known for his pace and bounce", "West Indies", domain.TierHard},
	{"Asghar Afghan", 23, "Former Afghan captain and middle-order batsman", "Afghanistan", domain.TierHard},
	{"Mujeeb Ur Rahman", 28, "Young Afghan spinner with variations", "Afghanistan", domain.TierHard},
	{"Hazratullah Zazai", 11, "Afghan opener known for his big hitting", "Afghanistan", domain.TierHard},
	{"Sikandar Raza", 25, "Zimbabwean all-rounder and experienced player", "Zimbabwe", domain.TierHard},
	{"Brendan Taylor", 6, "Former Zimbabwean captain and wicket-keeper", "Zimbabwe", domain.TierHard},
	{"Ajinkya Rahane", 1, "Test specialist known for his overseas performances", "India", domain.TierHard},
	{"Mohammad Shami", 11, "Fast bowler known for his reverse swing", "India", domain.TierHard},

	// Deep cuts, levels 19-20.
	{"Imam-ul-Haq", 2, "Left-handed opener and nephew of Inzamam", "Pakistan", domain.TierExpert},
	{"Asif Ali", 37, "Power hitter known for his big-hitting ability", "Pakistan", domain.TierExpert},
	{"Mohammad Wasim Jr", 20, "Young fast bowler with good pace", "Pakistan", domain.TierExpert},
	{"Pathum Nissanka", 14, "Opening batsman known for his technique", "Sri Lanka", domain.TierExpert},
	{"Chamika Karunaratne", 16, "Fast bowler and useful lower-order batsman", "Sri Lanka", domain.TierExpert},
	{"Avishka Fernando", 4, "Top-order batsman known for his stroke play", "Sri Lanka", domain.TierExpert},
	{"Bhanuka Rajapaksa", 36, "Left-handed batsman known for his aggressive style", "Sri Lanka", domain.TierExpert},
	{"Mehidy Hasan Miraz", 27, "Off-spinner and lower-order batsman", "Bangladesh", domain.TierExpert},
	{"Soumya Sarkar", 39, "All-rounder known for his aggressive batting", "Bangladesh", domain.TierExpert},
	{"Taskin Ahmed", 17, "Fast bowler known for his pace", "Bangladesh", domain.TierExpert},
	{"Afif Hossain", 19, "Left-handed batsman and part-time spinner", "Bangladesh", domain.TierExpert},
	{"Ryan Burl", 27, "Zimbabwean all-rounder", "Zimbabwe", domain.TierExpert},
	{"Craig Ervine", 4, "Zimbabwean captain and left-handed batsman", "Zimbabwe", domain.TierExpert},
	{"Blessing Muzarabani", 8, "Zimbabwean fast bowler", "Zimbabwe", domain.TierExpert},
	{"Cheteshwar Pujara", 3, "Test specialist known for his patience", "India", domain.TierExpert},
	{"Ishant Sharma", 29, "Tall fast bowler and experienced campaigner", "India", domain.TierExpert},
	{"Umesh Yadav", 9, "Fast bowler known for his pace", "India", domain.TierExpert},
	{"Bhuvneshwar Kumar", 15, "Swing bowler known for his new ball skills", "India", domain.TierExpert},
}
