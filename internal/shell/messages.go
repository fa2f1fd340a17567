package shell

// User-facing text of the interactive session.
const (
	msgWelcome  = "Welcome to the course planner."
	msgFarewell = "Thank you for using the course planner!"

	promptChoice = "What would you like to do? "
	promptFile   = "Enter file name: "
	promptCourse = "What course do you want to know about? "

	msgEmptyFilename = "Error: Filename cannot be empty."
	msgNotLoaded     = "Please load the data structure first (Option 1)."
	msgInvalidOption = "%s is not a valid option.\n"
	msgOpenFailed    = "Error: Could not open file \"%s\".\n"
	msgReadFailed    = "Error: Could not read file \"%s\".\n"
	msgSkippedLine   = "Warning: Skipping invalid line %d (missing course number or title).\n"
	msgLoaded        = "Loaded %d courses.\n"
)

var menu = []string{
	"1. Load Data Structure.",
	"2. Print Course List.",
	"3. Print Course.",
	"9. Exit",
}
