package domain

//region AuthenticationFailedError

type AuthenticationFailedError struct {
	Msg string
}

func (e *AuthenticationFailedError) Error() string {
	return e.Msg
}

func (e *AuthenticationFailedError) Is(target error) bool {
	_, ok := target.(*AuthenticationFailedError)
	return ok
}

//endregion

//region SessionInvalidError

type SessionInvalidError struct {
	Msg string
}

func (e *SessionInvalidError) Error() string {
	return e.Msg
}

func (e *SessionInvalidError) Is(target error) bool {
	_, ok := target.(*SessionInvalidError)
	return ok
}

//endregion

//region CredentialsMismatchError

type CredentialsMismatchError struct {
	Msg string
}

func (e *CredentialsMismatchError) Error() string {
	return e.Msg
}

func (e *CredentialsMismatchError) Is(target error) bool {
	_, ok := target.(*CredentialsMismatchError)
	return ok
}

//endregion

//region UserNotFoundError

type UserNotFoundError struct {
	Msg string
}

func (e *UserNotFoundError) Error() string {
	return e.Msg
}

func (e *UserNotFoundError) Is(target error) bool {
	_, ok := target.(*UserNotFoundError)
	return ok
}

//endregion

//region UserExistsError

type UserExistsError struct {
	Msg string
}

func (e *UserExistsError) Error() string {
	return e.Msg
}

func (e *UserExistsError) Is(target error) bool {
	_, ok := target.(*UserExistsError)
	return ok
}

//endregion

//region ProductNotFoundError

type ProductNotFoundError struct {
	Msg string
}

func (e *ProductNotFoundError) Error() string {
	return e.Msg
}

func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

//endregion

//region WrongRoleError

type WrongRoleError struct {
	Msg string
}

func (e *WrongRoleError) Error() string {
	return e.Msg
}

func (e *WrongRoleError) Is(target error) bool {
	_, ok := target.(*WrongRoleError)
	return ok
}

//endregion

//region NotOwnerError

type NotOwnerError struct {
	Msg string
}

func (e *NotOwnerError) Error() string {
	return e.Msg
}

func (e *NotOwnerError) Is(target error) bool {
	_, ok := target.(*NotOwnerError)
	return ok
}

//endregion

//region InsufficientStockError

type InsufficientStockError struct {
	Msg string
}

func (e *InsufficientStockError) Error() string {
	return e.Msg
}

func (e *InsufficientStockError) Is(target error) bool {
	_, ok := target.(*InsufficientStockError)
	return ok
}

//endregion

//region InsufficientCreditError

type InsufficientCreditError struct {
	Msg string
}

func (e *InsufficientCreditError) Error() string {
	return e.Msg
}

func (e *InsufficientCreditError) Is(target error) bool {
	_, ok := target.(*InsufficientCreditError)
	return ok
}

//endregion

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region TransactionConflictError

type TransactionConflictError struct {
	Msg string
}

func (e *TransactionConflictError) Error() string {
	return e.Msg
}

func (e *TransactionConflictError) Is(target error) bool {
	_, ok := target.(*TransactionConflictError)
	return ok
}

//endregion
