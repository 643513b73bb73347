package contact

import "github.com/m04kA/SMC-InteriorStudio/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
