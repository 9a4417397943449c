package flow

// Mode selects which auth screen is active.
type Mode string

const (
	ModeLogin          Mode = "login"
	ModeRegister       Mode = "register"
	ModeForgotPassword Mode = "forgotPassword"
	ModeOTP            Mode = "otpPage"
	ModeResetPassword  Mode = "resetPassword"
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeLogin, ModeRegister, ModeForgotPassword, ModeOTP, ModeResetPassword}

// transitions is the table of legal moves. Self moves are always allowed.
var transitions = map[Mode][]Mode{
	ModeLogin:          {ModeRegister, ModeForgotPassword},
	ModeRegister:       {ModeLogin},
	ModeForgotPassword: {ModeOTP, ModeLogin},
	ModeOTP:            {ModeResetPassword, ModeLogin},
	ModeResetPassword:  {ModeLogin},
}

func (m Mode) Valid() bool {
	_, ok := transitions[m]
	return ok
}

// NeedsHandoff reports whether entering m requires an e-mail handoff.
func (m Mode) NeedsHandoff() bool {
	return m == ModeOTP || m == ModeResetPassword
}

// CanTransition reports whether from -> to is in the transition table.
func CanTransition(from, to Mode) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	for _, m := range transitions[from] {
		if m == to {
			return true
		}
	}
	return false
}
