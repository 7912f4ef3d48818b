package healthcheck

var healthcheckService = &HealthcheckService{}

var healthcheckController = &HealthcheckController{
	healthcheckService: healthcheckService,
}

func GetHealthcheckService() *HealthcheckService {
	return healthcheckService
}

func GetHealthcheckController() *HealthcheckController {
	return healthcheckController
}
