package services

import "hotel/services/logger"

var svcLogger = logger.NewDefaultLogger(logger.InfoLevel)
