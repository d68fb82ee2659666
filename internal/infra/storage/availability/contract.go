package availability

import (
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
)

// DBExecutor интерфейс для работы с БД, поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
