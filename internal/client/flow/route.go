package flow

// Logical routes of the client.
const (
	RouteLogin          = "/login"
	RouteRegister       = "/register"
	RouteForgotPassword = "/forgot_password"
	RouteOTPVerify      = "/otp_verify"
	RouteChangePassword = "/change_password"
	RouteHome           = "/home"
)

var routes = map[Mode]string{
	ModeLogin:          RouteLogin,
	ModeRegister:       RouteRegister,
	ModeForgotPassword: RouteForgotPassword,
	ModeOTP:            RouteOTPVerify,
	ModeResetPassword:  RouteChangePassword,
}

// Route returns the logical path rendered for m.
func Route(m Mode) string {
	if r, ok := routes[m]; ok {
		return r
	}
	return RouteLogin
}

// Navigator moves the client between the unauthenticated flow and the
// authenticated area.
type Navigator interface {
	Navigate(route string)
}
