package facet

import "errors"

// Revert reasons. The router surfaces these verbatim to callers, so the
// exact wording is part of the API contract with the frontend.
var (
	ErrUserExists        = errors.New("BOC: User already exist!")
	ErrUserNotFound      = errors.New("BOC: User not found!")
	ErrOwnerOnly         = errors.New("BOC: Owner only Operation!")
	ErrNoContractEther   = errors.New("BOC: Insufficient Ether Balance!")
	ErrNoBirthdayFound   = errors.New("BOC: No Birthday found!")
	ErrNoBirthdaysFound  = errors.New("BOC: No birthdays found!")
	ErrInvalidBirthdayID = errors.New("BOC: Invalid Birthday ID!")
	ErrGoalInProgress    = errors.New("BOC: Goal in progress, wait until finished!")
	ErrInsufficientFunds = errors.New("BOC: Insufficient funds!")
	ErrInsufficientBOC   = errors.New("BOC: Insufficient BOC funds!")
	ErrGoalNotAchieved   = errors.New("BOC: Denied, until your goal has been achieved, keep sharing, you got this.")
	ErrSelfMessage       = errors.New("BOC: Can't message your self!")
	ErrSelfGift          = errors.New("BOC: Can't gift your self!")
	ErrZeroGift          = errors.New("BOC: Gift must be greater than zero!")
	ErrNotEnoughEther    = errors.New("BOC: Not enough Ether!")
	ErrLowTokenBalance   = errors.New("BOC: Insufficient BOC Balance!")
	ErrAlreadySubscribed = errors.New("BOC: You are already subscribed!")
	ErrAlreadyInit       = errors.New("BOC: Already initialized!")
	ErrInvalidPayload    = errors.New("BOC: Invalid call payload!")
)
