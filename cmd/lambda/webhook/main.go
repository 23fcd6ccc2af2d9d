// webhook Lambda receives board platform notifications behind API
// Gateway and runs campaign imports.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/tidwall/gjson"

	camplambda "github.com/promoops/campaigner/internal/lambda"
	"github.com/promoops/campaigner/internal/server/handlers"
)

func handleWebhook(ctx context.Context, d *camplambda.Deps, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body := []byte(req.Body)

	if challenge := gjson.GetBytes(body, "challenge"); challenge.Exists() {
		return jsonResponse(200, map[string]string{"challenge": challenge.String()})
	}

	event, ok := handlers.ParseWebhookEvent(body)
	if !ok {
		return jsonResponse(400, map[string]string{"error": "payload is neither a challenge nor an item event"})
	}

	res := d.Importer.Import(ctx, event)
	d.Logger.Info("webhook import completed",
		"board_id", event.BoardID, "item_id", event.ItemID, "outcome", res.Outcome)

	// The platform retries on non-2xx; outcomes are reported through
	// the result body and the alert sinks instead.
	return jsonResponse(200, res)
}

func jsonResponse(status int, body interface{}) (events.APIGatewayProxyResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: 500}, err
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(data),
	}, nil
}

func main() {
	deps, err := camplambda.Init(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		os.Exit(1)
	}

	awslambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return handleWebhook(ctx, deps, req)
	})
}
