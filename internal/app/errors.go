package app

import "errors"

var (
	// ErrValidation – не заполнены обязательные поля формы
	ErrValidation = errors.New("validation failed")
	// ErrNoUser – действие требует пользователя, а хост его не передал
	ErrNoUser = errors.New("user is not defined")
	// ErrNotFound – объявления с таким ID нет или нечего подтверждать
	ErrNotFound = errors.New("not found")
	// ErrForbidden – действие доступно только владельцу (или только не владельцу)
	ErrForbidden = errors.New("forbidden")
)
