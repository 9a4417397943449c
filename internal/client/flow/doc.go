// Package flow holds the authentication mode machine: which auth screen is
// active, which moves between screens are legal, and the e-mail handoff
// that travels ForgotPassword -> OTP -> ResetPassword.
//
//	login          -> register, forgotPassword
//	register       -> login
//	forgotPassword -> otpPage, login
//	otpPage        -> resetPassword, login
//	resetPassword  -> login
package flow
