// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package eventui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goticket/goticket/lib/api"
	"github.com/goticket/goticket/lib/booking"
	"github.com/goticket/goticket/lib/validate"
)

// Login form field order.
const (
	loginFieldEmail = iota
	loginFieldPassword
	loginFieldCount
)

// Register form field order.
const (
	registerFieldFullName = iota
	registerFieldEmail
	registerFieldPhone
	registerFieldPassword
	registerFieldCount
)

func (model *Model) prepareLoginForm() {
	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword

	model.authInputs = []textinput.Model{email, password}
	model.authFocus = loginFieldEmail
	model.authErrors = nil
}

func (model *Model) prepareRegisterForm() {
	placeholders := []string{"Full name", "Email", "Phone", "Password"}
	inputs := make([]textinput.Model, len(placeholders))
	for index, placeholder := range placeholders {
		input := textinput.New()
		input.Placeholder = placeholder
		input.CharLimit = 120
		inputs[index] = input
	}
	inputs[registerFieldPassword].EchoMode = textinput.EchoPassword
	inputs[registerFieldFullName].Focus()

	model.authInputs = inputs
	model.authFocus = registerFieldFullName
	model.authErrors = nil
}

func (model *Model) updateAuthForm(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	fieldCount := loginFieldCount
	if model.screen == ScreenRegister {
		fieldCount = registerFieldCount
	}

	switch {
	case message.Type == tea.KeyCtrlC:
		return model, tea.Quit

	case message.Type == tea.KeyEscape:
		model.screen = model.afterAuth
		if model.screen == ScreenRegistrations {
			// There is still no session; registrations would just
			// bounce back here.
			model.screen = ScreenList
		}
		return model, nil

	// Arrow keys work as field navigation here because every auth
	// field is a single-line input.
	case key.Matches(message, model.keys.NextField), message.Type == tea.KeyDown:
		model.setAuthFocus((model.authFocus + 1) % fieldCount)
		return model, nil

	case key.Matches(message, model.keys.PreviousField), message.Type == tea.KeyUp:
		model.setAuthFocus((model.authFocus + fieldCount - 1) % fieldCount)
		return model, nil

	case key.Matches(message, model.keys.Submit):
		if model.screen == ScreenRegister {
			return model.submitRegisterForm()
		}
		return model.submitLoginForm()

	case message.Type == tea.KeyCtrlN:
		// Toggle between sign in and sign up.
		if model.screen == ScreenLogin {
			model.screen = ScreenRegister
			model.prepareRegisterForm()
		} else {
			model.screen = ScreenLogin
			model.prepareLoginForm()
		}
		return model, nil
	}

	var command tea.Cmd
	model.authInputs[model.authFocus], command =
		model.authInputs[model.authFocus].Update(message)
	return model, command
}

func (model *Model) setAuthFocus(focus int) {
	model.authFocus = focus
	for index := range model.authInputs {
		if index == focus {
			model.authInputs[index].Focus()
		} else {
			model.authInputs[index].Blur()
		}
	}
}

// submitLoginForm validates locally, then issues the login request.
// Validation failures never reach the network.
func (model *Model) submitLoginForm() (tea.Model, tea.Cmd) {
	email := strings.TrimSpace(model.authInputs[loginFieldEmail].Value())
	password := model.authInputs[loginFieldPassword].Value()

	if fieldErrors := validate.LoginForm(email, password); len(fieldErrors) > 0 {
		model.authErrors = fieldErrorMessages(fieldErrors)
		return model, nil
	}

	model.authErrors = nil
	model.loading = true
	return model, tea.Batch(model.spinner.Tick, model.submitLogin(email, password))
}

func (model *Model) submitRegisterForm() (tea.Model, tea.Cmd) {
	fullName := strings.TrimSpace(model.authInputs[registerFieldFullName].Value())
	email := strings.TrimSpace(model.authInputs[registerFieldEmail].Value())
	phone := strings.TrimSpace(model.authInputs[registerFieldPhone].Value())
	password := model.authInputs[registerFieldPassword].Value()

	// The TUI form has a single password field, so confirm always
	// matches.
	if fieldErrors := validate.RegisterForm(fullName, email, phone, password, password); len(fieldErrors) > 0 {
		model.authErrors = fieldErrorMessages(fieldErrors)
		return model, nil
	}

	model.authErrors = nil
	model.loading = true
	return model, tea.Batch(model.spinner.Tick, model.submitRegister(api.RegisterRequest{
		Email:       email,
		Password:    password,
		FullName:    fullName,
		PhoneNumber: phone,
	}))
}

func fieldErrorMessages(fieldErrors []validate.FieldError) []string {
	messages := make([]string, len(fieldErrors))
	for index, fieldError := range fieldErrors {
		messages[index] = fieldError.Message
	}
	return messages
}

// handleAuthResult resumes the interrupted action after a login or
// registration attempt completes.
func (model *Model) handleAuthResult(result authResultMsg) (tea.Model, tea.Cmd) {
	model.loading = false
	if result.err != nil {
		model.authErrors = []string{authFailureMessage(result.err, result.register)}
		return model, nil
	}

	if result.register {
		model.statusMessage = "Account created — you are logged in."
	} else {
		model.statusMessage = "Logged in."
	}
	model.authErrors = nil
	model.screen = model.afterAuth

	switch model.afterAuth {
	case ScreenDetail:
		// The user was stopped at the login prompt mid-booking;
		// continue straight into the form.
		if model.detail != nil && model.flow.State() == booking.StateLoginRequired {
			model.flow.BookClicked(true)
			model.setBookingFocus(focusFullName)
		}
		return model, nil
	case ScreenRegistrations:
		model.loading = true
		return model, tea.Batch(model.spinner.Tick, model.loadRegistrations())
	}
	return model, nil
}

func authFailureMessage(err error, register bool) string {
	var apiError *api.APIError
	if errors.As(err, &apiError) && apiError.Message != "" {
		return apiError.Message
	}
	if register {
		return "Registration failed. Please try again."
	}
	return "Login failed. Please check your email and password."
}

func (model *Model) viewAuthForm() string {
	var view strings.Builder
	title := "GoTicket — Sign in"
	labels := []string{"Email", "Password"}
	if model.screen == ScreenRegister {
		title = "GoTicket — Create account"
		labels = []string{"Full name", "Email", "Phone", "Password"}
	}
	view.WriteString(model.headerView(title))

	labelStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	focusStyle := lipgloss.NewStyle().Foreground(model.theme.HeaderForeground)
	for index, input := range model.authInputs {
		label := labelStyle.Render(labels[index])
		if model.authFocus == index {
			label = focusStyle.Render(labels[index])
		}
		view.WriteString(label + "\n" + input.View() + "\n\n")
	}

	if model.loading {
		view.WriteString(model.spinner.View() + " signing in...\n\n")
	}
	errorStyle := lipgloss.NewStyle().Foreground(model.theme.ErrorForeground)
	for _, message := range model.authErrors {
		view.WriteString(errorStyle.Render("• "+message) + "\n")
	}
	if len(model.authErrors) > 0 {
		view.WriteString("\n")
	}

	toggle := "C-n create account instead"
	if model.screen == ScreenRegister {
		toggle = "C-n sign in instead"
	}
	view.WriteString(model.helpView("enter submit · tab next field · " + toggle + " · esc back"))
	return view.String()
}
