package services

// NewEmailServiceWithClients builds an EmailService over fake Resend clients.
var NewEmailServiceWithClients = newEmailService
