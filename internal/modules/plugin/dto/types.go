package dto

type PluginInfo struct {
	Name         string
	Version      string
	Enabled      bool
	Binary       string
	Capabilities []string
}

type DoctorResult struct {
	Name            string
	ChecksumValid   bool
	BinaryReachable bool
	LifecycleOK     bool
	Error           string
}

type CommandInfo struct {
	ID              string
	Title           string
	Description     string
	Kind            string
	InputSchemaJSON string
	TimeoutMS       int
}

// ExecuteInput carries the execution context handed to the plugin along with
// the command. An audit with no InputJSON receives the student's plan.
type ExecuteInput struct {
	PluginName string
	CommandID  string
	InputJSON  string
	DataDir    string
	StudentID  int64
	PlanID     int64
	Env        map[string]string
}

type Finding struct {
	Severity   string
	TermCode   string
	CourseCode string
	Message    string
}

type ExecuteOutput struct {
	PluginName string
	CommandID  string
	Stdout     string
	Stderr     string
	OutputJSON string
	ExitCode   int
	Findings   []Finding
}
