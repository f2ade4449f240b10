package domain

// NotificationKind selects how a transient message is presented.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// User-facing notification texts.
const (
	MsgWorkoutAdded   = "Workout added"
	MsgRejected       = "Something went wrong"
	MsgTransportError = "Error in adding workout"
)

// HomeRoute is where the form navigates after a workout is added.
const HomeRoute = "/"

// AddRoute is the route of the add-workout form.
const AddRoute = "/add"
