package services

// ServiceContainer holds instances of all the application services.
// Handlers receive it at route registration time.
type ServiceContainer struct {
	Dashboard   DashboardSvc
	Period      PeriodSvcFacade
	History     HistorySvc
	Service     ServiceRecordSvcFacade
	Expense     ExpenseSvcFacade
	Appointment AppointmentSvcFacade
	Withdrawal  WithdrawalSvcFacade
	Setting     SettingSvcFacade
}
