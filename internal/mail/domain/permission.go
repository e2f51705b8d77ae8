package domain

// Permission nodes name the discrete administrative capabilities a caller
// or credential may hold. Admin routes require the matching node on the
// caller's session (checked by the external authorizer); the send node is
// granted to issued credentials themselves.
const (
	PermCreateCredentials = "mailservice.create_credentials"
	PermModifyPermissions = "mailservice.modify_permissions"
	PermViewPermissions   = "mailservice.view_permissions"
	PermRemoveCredentials = "mailservice.remove_credentials"
	PermViewWaitlist      = "mailservice.view_waitlist"
	PermSendEmail         = "mailservice.send_email"
)
