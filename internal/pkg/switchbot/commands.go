package switchbot

const (
	apiV10 = "v1.0"
	apiV11 = "v1.1"

	commandPress  = "press"
	commandUnlock = "unlock"
)

type commandRequest struct {
	Command     string `json:"command"`
	Parameter   string `json:"parameter"`
	CommandType string `json:"commandType"`
}

func newCommand(name string) commandRequest {
	return commandRequest{
		Command:     name,
		Parameter:   "default",
		CommandType: "command",
	}
}

// Wire form of CommandResult, so that a response without a statusCode can
// be told apart from one carrying a zero
type commandResponse struct {
	StatusCode *int                   `json:"statusCode"`
	Body       map[string]interface{} `json:"body"`
	Message    string                 `json:"message"`
}
