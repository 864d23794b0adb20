package web

// View-scoped messages shown in the page alert.
const (
	msgInvalidLogin = "Invalid username or password. Please try again."

	msgFetchAppointments   = "Failed to fetch appointments. Please try again later."
	msgFetchCustomers      = "Failed to fetch customers. Please try again later."
	msgFetchServices       = "Failed to fetch services. Please try again later."
	msgFetchHistory        = "Failed to fetch appointment history. Please try again later."
	msgFetchServiceReports = "Failed to fetch service reports. Please try again later."
	msgExportReport        = "Failed to export the report. Please try again later."

	msgToggleStatus      = "Failed to update appointment status. Please try again."
	msgCreateAppointment = "Failed to create appointment. Please check your input and try again."
	msgUpdateAppointment = "Failed to update appointment. Please check your input and try again."
	msgDeleteAppointment = "Failed to delete appointment. Please try again."
	msgAppointmentGone   = "That appointment no longer exists."

	msgCreateCustomer = "Failed to create customer. Please check your input and try again."
	msgUpdateCustomer = "Failed to update customer. Please check your input and try again."
	msgDeleteCustomer = "Failed to delete customer. Please try again."

	msgCreateService = "Failed to create service. Please check your input and try again."
	msgUpdateService = "Failed to update service. Please check your input and try again."
	msgDeleteService = "Failed to delete service. Please try again."

	okAppointmentCreated = "Appointment created successfully!"
	okAppointmentUpdated = "Appointment updated successfully!"
	okAppointmentDeleted = "Appointment deleted successfully!"
	okStatusUpdated      = "Appointment status updated successfully!"
	okCustomerCreated    = "Customer created successfully!"
	okCustomerUpdated    = "Customer updated successfully!"
	okCustomerDeleted    = "Customer deleted successfully!"
	okServiceCreated     = "Service created successfully!"
	okServiceUpdated     = "Service updated successfully!"
	okServiceDeleted     = "Service deleted successfully!"
)
