package pmsclient

import (
	"context"
	"net/http"

	pmsdomain "github.com/vfg2006/yield-manager-api/infrastructure/integrator/pms/domain"
)

// PostAction envia uma ação ao PMS. Não há nova tentativa aqui; quem chama decide se repete.
func (c *PMSClient) PostAction(ctx context.Context, propertyID string, action pmsdomain.ActionRequest) (pmsdomain.ActionResponse, error) {
	var response pmsdomain.ActionResponse

	endpoint, err := c.endpoint(nil, "properties", propertyID, "actions")
	if err != nil {
		return response, err
	}

	err = c.do(ctx, http.MethodPost, endpoint, action, &response)
	return response, err
}
