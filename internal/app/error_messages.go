// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message catalogue of the event portal
// client.
//
// All Msg* constants are shown verbatim by the terminal UI, either as a
// status line or inside the error overlay. Keeping them in one place keeps
// the wording consistent between screens and lets service.MapError translate
// errors without depending on the UI package.
package app

const (
	// MsgServerUnavailable is shown for every transport failure: no
	// response was obtained at all.
	MsgServerUnavailable = "Отсутствует сеть или сервер недоступен"

	// MsgUnexpected is the fallback for errors with no better description.
	MsgUnexpected = "Непредвиденная ошибка, попробуйте ещё раз"

	// MsgLocalStorageFailure is shown when the local credential store cannot
	// be read or written.
	MsgLocalStorageFailure = "Ошибка локального хранилища"

	// MsgSessionExpired is shown for a 401 without a server message.
	MsgSessionExpired = "Сессия истекла, войдите снова"

	// MsgAccessDenied is shown for a 403 without a server message.
	MsgAccessDenied = "Доступ запрещён"

	// MsgNotFound is shown for a 404 without a server message.
	MsgNotFound = "Не найдено"

	// MsgConflict is shown for a 409 without a server message.
	MsgConflict = "Конфликт данных"

	// MsgInvalidDataProvided is shown for a 400 without a server message.
	MsgInvalidDataProvided = "Переданы некорректные данные"

	// MsgServerError is shown for 5xx responses without a server message.
	MsgServerError = "Ошибка на стороне сервера"

	// MsgEmptyToken is shown when the server accepted a login or a recovery
	// code but returned no token.
	MsgEmptyToken = "Сервер не вернул токен"

	// MsgFillRequiredFields is shown when a form is submitted with a
	// required field left blank.
	MsgFillRequiredFields = "Заполните обязательные поля"

	// MsgInvalidEmail and MsgInvalidBirthDate are the account form format
	// messages.
	MsgInvalidEmail     = "Некорректный e-mail"
	MsgInvalidBirthDate = "Дата рождения должна быть в формате ГГГГ-ММ-ДД и не позже сегодняшнего дня"

	// MsgEmailRequired, MsgCodeRequired and MsgPasswordRequired are the
	// password recovery validation messages.
	MsgEmailRequired    = "Укажите e-mail"
	MsgCodeRequired     = "Введите код из письма"
	MsgPasswordRequired = "Введите новый пароль"

	// MsgPasswordMismatch is shown when the new password and its
	// confirmation differ.
	MsgPasswordMismatch = "Пароли не совпадают"

	// MsgRequestInProgress is shown when a step is submitted while the
	// previous request is still running.
	MsgRequestInProgress = "Запрос уже выполняется"

	// MsgProfileNotLoaded is shown when an action needs the user's profile
	// before it has been fetched.
	MsgProfileNotLoaded = "Профиль ещё загружается, попробуйте через секунду"

	// MsgCertificateNotVerified is shown when a certificate lookup fails.
	MsgCertificateNotVerified = "Не удалось проверить сертификат. Проверьте код и попробуйте снова"
)

const (
	MsgLoginSucceeded          = "Вход выполнен"
	MsgRegistrationSucceeded   = "Регистрация прошла успешно, войдите в систему"
	MsgRecoveryCodeSent        = "Код отправлен на ваш e-mail"
	MsgPasswordChanged         = "Пароль изменён, войдите с новым паролем"
	MsgProfileUpdated          = "Данные обновлены"
	MsgSubscribed              = "Вы записаны на мероприятие"
	MsgRegistrationCanceled    = "Запись отменена"
	MsgCertificateDownloadedTo = "Сертификат сохранён: "
	MsgCodeCopied              = "Код скопирован в буфер обмена"
	MsgLoggedOut               = "Вы вышли из системы"
)
