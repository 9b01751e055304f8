package events

// Context keys for event data
const (
	ContextMessageID  = "message_id"  // string: id of the resolved chat message
	ContextSessionID  = "session_id"  // string: id of the interaction session
	ContextUndo       = "undo"        // bool: the write reverses an earlier application
	ContextSaveTotal  = "save_total"  // int: saving throw total
	ContextSaveDC     = "save_dc"     // int: saving throw DC
	ContextSaveResult = "save_result" // bool: whether the save succeeded
	ContextAbility    = "ability"     // string: saving throw ability
)
