// Package v1alpha1 is the StatGenService wire contract: request and response
// messages, the gRPC service description and a JSON codec.
package v1alpha1

// Method identifiers used on the wire
const (
	MethodPriority        = "priority"
	MethodHardcore        = "hardcore"
	MethodBestThreeOfFour = "best_three_of_four"
)

// Session states used on the wire
const (
	SessionStateOpen     = "open"
	SessionStateComplete = "complete"
)

// AbilityScores holds one value per attribute. Zero means unassigned.
type AbilityScores struct {
	Strength     int32 `json:"strength,omitempty"`
	Dexterity    int32 `json:"dexterity,omitempty"`
	Constitution int32 `json:"constitution,omitempty"`
	Intelligence int32 `json:"intelligence,omitempty"`
	Wisdom       int32 `json:"wisdom,omitempty"`
	Charisma     int32 `json:"charisma,omitempty"`
}

// Character is a character record
type Character struct {
	Id            string         `json:"id"`
	PlayerId      string         `json:"player_id"`
	Name          string         `json:"name"`
	ImageRef      string         `json:"image_ref,omitempty"`
	AbilityScores *AbilityScores `json:"ability_scores,omitempty"`
	ScoreMethod   string         `json:"score_method,omitempty"`
	ScoresSetAt   int64          `json:"scores_set_at,omitempty"`
	CreatedAt     int64          `json:"created_at"`
	UpdatedAt     int64          `json:"updated_at"`
}

// GetAbilityScores returns the scores or nil
func (c *Character) GetAbilityScores() *AbilityScores {
	if c == nil {
		return nil
	}
	return c.AbilityScores
}

// MethodInfo describes a generation method
type MethodInfo struct {
	Method             string `json:"method"`
	Name               string `json:"name"`
	Summary            string `json:"summary"`
	Description        string `json:"description"`
	RequiresAssignment bool   `json:"requires_assignment"`
}

// PoolEntry is one best-three-of-four candidate with its dice
type PoolEntry struct {
	Value   int32   `json:"value"`
	Dice    []int32 `json:"dice,omitempty"`
	Dropped []int32 `json:"dropped,omitempty"`
}

// AssignmentSession is the rendered state of an assignment session
type AssignmentSession struct {
	CharacterId   string         `json:"character_id"`
	Pool          []*PoolEntry   `json:"pool"`
	Consumed      []bool         `json:"consumed"`
	Picks         []int32        `json:"picks,omitempty"`
	Assigned      *AbilityScores `json:"assigned,omitempty"`
	NextAttribute string         `json:"next_attribute,omitempty"`
	State         string         `json:"state"`
	Prompt        string         `json:"prompt"`
	ExpiresAt     int64          `json:"expires_at"`
}

// ListMethodsRequest is the request for ListMethods
type ListMethodsRequest struct{}

// ListMethodsResponse is the response for ListMethods
type ListMethodsResponse struct {
	Methods []*MethodInfo `json:"methods"`
}

// CreateCharacterRequest is the request for CreateCharacter
type CreateCharacterRequest struct {
	PlayerId string `json:"player_id"`
	Name     string `json:"name"`
	ImageRef string `json:"image_ref,omitempty"`
}

// CreateCharacterResponse is the response for CreateCharacter
type CreateCharacterResponse struct {
	Character *Character `json:"character"`
}

// GetCharacterRequest is the request for GetCharacter
type GetCharacterRequest struct {
	CharacterId string `json:"character_id"`
}

// GetCharacterResponse is the response for GetCharacter
type GetCharacterResponse struct {
	Character *Character `json:"character"`
}

// GeneratePriorityRequest is the request for GeneratePriority. Most and
// Least are attribute names such as "strength".
type GeneratePriorityRequest struct {
	CharacterId string `json:"character_id,omitempty"`
	Most        string `json:"most"`
	Least       string `json:"least"`
}

// GeneratePriorityResponse is the response for GeneratePriority
type GeneratePriorityResponse struct {
	Scores    *AbilityScores `json:"scores"`
	Character *Character     `json:"character,omitempty"`
}

// GenerateHardcoreRequest is the request for GenerateHardcore
type GenerateHardcoreRequest struct {
	CharacterId string `json:"character_id,omitempty"`
}

// GenerateHardcoreResponse is the response for GenerateHardcore
type GenerateHardcoreResponse struct {
	Scores    *AbilityScores `json:"scores"`
	Character *Character     `json:"character,omitempty"`
}

// StartAssignmentRequest is the request for StartAssignment
type StartAssignmentRequest struct {
	CharacterId string `json:"character_id"`
	TtlSeconds  int64  `json:"ttl_seconds,omitempty"`
}

// GetAssignmentRequest is the request for GetAssignment
type GetAssignmentRequest struct {
	CharacterId string `json:"character_id"`
}

// PickValueRequest is the request for PickValue
type PickValueRequest struct {
	CharacterId string `json:"character_id"`
	Position    int32  `json:"position"`
}

// ResetAssignmentRequest is the request for ResetAssignment
type ResetAssignmentRequest struct {
	CharacterId string `json:"character_id"`
}

// RerollAssignmentRequest is the request for RerollAssignment
type RerollAssignmentRequest struct {
	CharacterId string `json:"character_id"`
}

// AssignmentResponse is returned by every call that leaves a session open
type AssignmentResponse struct {
	Session *AssignmentSession `json:"session"`
}

// CommitAssignmentRequest is the request for CommitAssignment
type CommitAssignmentRequest struct {
	CharacterId string `json:"character_id"`
}

// CommitAssignmentResponse is the response for CommitAssignment
type CommitAssignmentResponse struct {
	Scores    *AbilityScores `json:"scores"`
	Character *Character     `json:"character"`
}

// DiscardAssignmentRequest is the request for DiscardAssignment
type DiscardAssignmentRequest struct {
	CharacterId string `json:"character_id"`
}

// DiscardAssignmentResponse is the response for DiscardAssignment
type DiscardAssignmentResponse struct {
	Discarded bool `json:"discarded"`
}
