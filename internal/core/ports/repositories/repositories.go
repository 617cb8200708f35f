package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Every storage backend builds one of these.
type RepositoryProvider struct {
	ServiceRepo      ServiceRecordRepositoryFacade
	ExpenseRepo      ExpenseRepositoryFacade
	AppointmentRepo  AppointmentRepositoryFacade
	WithdrawalRepo   WithdrawalRepositoryFacade
	ClosedPeriodRepo ClosedPeriodRepositoryFacade
	SettingRepo      SettingRepositoryFacade
	TxManager        TransactionManager
}
