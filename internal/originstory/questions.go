package originstory

// Archetype labels tracked from psychometric answers. Informational only:
// the scorer never reads them, but callers surface them in responses.
const (
	ArchetypeBuilder      = "Builder"
	ArchetypeThinker      = "Thinker"
	ArchetypeCommunicator = "Communicator"
	ArchetypeCreator      = "Creator"
)

// optionTypeAnti marks a psychometric option as a negative signal: its
// anti-tags count against streams instead of for them.
const optionTypeAnti = "anti"

// Option is one selectable answer to a psychometric question.
type Option struct {
	Label    string   `json:"label"`
	Tags     []string `json:"tags,omitempty"`
	AntiTags []string `json:"anti_tags,omitempty"`
	Type     string   `json:"type,omitempty"`
}

// PsychometricQuestion is a multiple-choice question whose options
// contribute positive tags (or, for the stress question, anti-tags).
type PsychometricQuestion struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

// AntiChoiceQuestion is a yes/no filter question; affirming it grants
// its anti-tags.
type AntiChoiceQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	AntiTags []string `json:"anti_tags"`
}

// QuestionBank bundles everything a client needs to render the intake
// form: the questions plus the controlled vocabularies.
type QuestionBank struct {
	PsychometricQuestions []PsychometricQuestion `json:"psychometric_questions"`
	AntiChoiceQuestions   []AntiChoiceQuestion   `json:"anti_choice_questions"`
	InterestOptions       []string               `json:"interest_options"`
	SubjectOptions        []string               `json:"subject_options"`
}

var psychometricQuestions = []PsychometricQuestion{
	{
		ID:       1,
		Question: "On a Saturday afternoon, you'd rather…",
		Options: []Option{
			{Label: "🔧 Build or fix something with your hands", Tags: []string{"hands_on", "building", "physical_labor"}, Type: ArchetypeBuilder},
			{Label: "📖 Read, research, or solve a puzzle", Tags: []string{"logic", "research", "curiosity"}, Type: ArchetypeThinker},
			{Label: "🗣️ Hang out, organize plans, or lead a group", Tags: []string{"communication", "leadership", "people"}, Type: ArchetypeCommunicator},
			{Label: "🎨 Draw, design, or create something new", Tags: []string{"creativity", "visual_thinking", "aesthetics"}, Type: ArchetypeCreator},
		},
	},
	{
		ID:       2,
		Question: "Which of these would stress you out the MOST?",
		Options: []Option{
			{Label: "😰 Solving complex math equations all day", AntiTags: []string{"math", "math_heavy"}, Type: optionTypeAnti},
			{Label: "😰 Working alone in a lab for 8 hours", AntiTags: []string{"lab_work", "isolation", "sitting_all_day"}, Type: optionTypeAnti},
			{Label: "😰 Giving a presentation to 200 people", AntiTags: []string{"communication", "leadership"}, Type: optionTypeAnti},
			{Label: "😰 Seeing blood or doing dissections", AntiTags: []string{"blood", "blood_phobia"}, Type: optionTypeAnti},
		},
	},
	{
		ID:       3,
		Question: "What kind of problems do you want to solve?",
		Options: []Option{
			{Label: "🌍 Climate, energy, sustainability", Tags: []string{"physics", "building", "outdoors"}, Type: "mission"},
			{Label: "🏥 Health, diseases, saving lives", Tags: []string{"biology", "chemistry", "empathy", "helping_people"}, Type: "mission"},
			{Label: "💻 Making technology smarter & faster", Tags: []string{"logic", "technology", "math", "problem_solving"}, Type: "mission"},
			{Label: "💰 Business, money, entrepreneurship", Tags: []string{"communication", "strategy", "leadership", "math_basic"}, Type: "mission"},
		},
	},
	{
		ID:       4,
		Question: "Your ideal work environment looks like…",
		Options: []Option{
			{Label: "🏢 Office with a team & meetings", Tags: []string{"people", "communication", "leadership"}, Type: "environment"},
			{Label: "💻 Remote, headphones on, deep focus", Tags: []string{"sitting", "logic", "technology", "sitting_all_day"}, Type: "environment"},
			{Label: "🔬 A lab with equipment & experiments", Tags: []string{"lab_work", "research", "hands_on"}, Type: "environment"},
			{Label: "🌳 Outdoors, moving around, fieldwork", Tags: []string{"outdoors", "physical_labor", "hands_on"}, Type: "environment"},
		},
	},
	{
		ID:       5,
		Question: "What matters MOST to you in a career?",
		Options: []Option{
			{Label: "💰 High salary & financial security", Tags: []string{"math", "technology", "strategy"}},
			{Label: "❤️ Making a real difference in people's lives", Tags: []string{"empathy", "helping_people", "biology"}},
			{Label: "🎨 Creative freedom & self-expression", Tags: []string{"creativity", "visual_thinking", "storytelling"}},
			{Label: "⚖️ Work-life balance & stability", Tags: []string{"math_basic", "communication"}},
		},
	},
}

var antiChoiceQuestions = []AntiChoiceQuestion{
	{ID: "ac1", Question: "Do you hate looking at blood or doing dissections?", AntiTags: []string{"blood", "blood_phobia"}},
	{ID: "ac2", Question: "Do you hate sitting at a computer for hours?", AntiTags: []string{"sitting", "sitting_all_day", "coding_heavy"}},
	{ID: "ac3", Question: "Do you hate memorizing lots of facts and definitions?", AntiTags: []string{"hate_memorizing"}},
	{ID: "ac4", Question: "Do you hate doing math and equations?", AntiTags: []string{"math", "math_heavy", "hate_math"}},
	{ID: "ac5", Question: "Do you hate working alone for long stretches?", AntiTags: []string{"isolation", "research", "lab_work"}},
	{ID: "ac6", Question: "Do you hate speaking in front of people?", AntiTags: []string{"communication", "leadership"}},
}

// subjectTags maps self-reported academic strengths to trait tags.
// Unknown subjects fall back to the lowercased subject itself.
var subjectTags = map[string][]string{
	"math":      {"math", "logic", "statistics"},
	"physics":   {"physics", "building", "problem_solving"},
	"chemistry": {"chemistry", "lab_work"},
	"biology":   {"biology", "research"},
	"english":   {"communication", "storytelling"},
	"computer":  {"technology", "logic", "coding_heavy"},
	"art":       {"creativity", "visual_thinking", "aesthetics"},
	"economics": {"strategy", "math_basic"},
}

// interestTags maps cleaned interest labels to trait tags. Unknown
// interests fall back to the cleaned label itself.
var interestTags = map[string][]string{
	"robots":   {"technology", "building", "hands_on"},
	"ai":       {"logic", "math", "technology"},
	"money":    {"strategy", "math_basic", "leadership"},
	"writing":  {"communication", "storytelling", "creativity"},
	"gaming":   {"technology", "logic", "creativity"},
	"outdoors": {"outdoors", "physical_labor", "hands_on"},
	"music":    {"creativity", "aesthetics"},
	"science":  {"research", "curiosity", "lab_work"},
	"sports":   {"hands_on", "outdoors", "leadership"},
	"helping":  {"empathy", "helping_people"},
}

var interestOptions = []string{
	"#Robots", "#AI", "#Money", "#Writing", "#Gaming",
	"#Outdoors", "#Music", "#Science", "#Sports", "#Helping",
	"#Art", "#Coding", "#Business", "#Health", "#Space",
}

var subjectOptions = []string{
	"Math", "Physics", "Chemistry", "Biology",
	"English", "Computer", "Art", "Economics",
}

// Questions returns the full question bank for rendering the intake form.
func Questions() QuestionBank {
	return QuestionBank{
		PsychometricQuestions: psychometricQuestions,
		AntiChoiceQuestions:   antiChoiceQuestions,
		InterestOptions:       interestOptions,
		SubjectOptions:        subjectOptions,
	}
}

func findPsychometricQuestion(id int) *PsychometricQuestion {
	for i := range psychometricQuestions {
		if psychometricQuestions[i].ID == id {
			return &psychometricQuestions[i]
		}
	}
	return nil
}

func findAntiChoiceQuestion(id string) *AntiChoiceQuestion {
	for i := range antiChoiceQuestions {
		if antiChoiceQuestions[i].ID == id {
			return &antiChoiceQuestions[i]
		}
	}
	return nil
}
