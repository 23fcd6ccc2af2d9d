package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/promoops/campaigner/pkg/types"
)

// Compile-time interface satisfaction check.
var _ Store = (*DynamoDBStore)(nil)

// DDBAPI is the subset of the DynamoDB client used by DynamoDBStore.
type DDBAPI interface {
	GetItem(ctx context.Context, input *dynamodb.GetItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, input *dynamodb.QueryInput, opts ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, input *dynamodb.TransactWriteItemsInput, opts ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
	DescribeTable(ctx context.Context, input *dynamodb.DescribeTableInput, opts ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, input *dynamodb.CreateTableInput, opts ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// PK/SK prefix constants.
const (
	prefixItem  = "ITEM#"
	prefixBoard = "BOARD#"
	prefixRun   = "RUN#"

	skLatest = "LATEST"
)

func itemPK(itemID string) string   { return prefixItem + itemID }
func boardPK(boardID string) string { return prefixBoard + boardID }

func runSK(rec Record) string {
	// ULIDs sort lexicographically by creation time; newest-first
	// listing queries in descending SK order.
	return prefixRun + rec.RunID
}

// DynamoDBStore persists campaign records in a single DynamoDB table.
type DynamoDBStore struct {
	client      DDBAPI
	tableName   string
	logger      *slog.Logger
	createTable bool
}

// DynamoDBOption configures a DynamoDBStore.
type DynamoDBOption func(*DynamoDBStore)

// WithDDBClient sets a custom DynamoDB client (useful for testing).
func WithDDBClient(c DDBAPI) DynamoDBOption {
	return func(s *DynamoDBStore) { s.client = c }
}

// NewDynamoDB creates a DynamoDB-backed campaign store.
func NewDynamoDB(cfg *types.DynamoDBConfig, opts ...DynamoDBOption) (*DynamoDBStore, error) {
	s := &DynamoDBStore{
		tableName:   cfg.TableName,
		logger:      slog.Default(),
		createTable: cfg.CreateTable,
	}
	for _, o := range opts {
		o(s)
	}
	if s.client == nil {
		var loadOpts []func(*awsconfig.LoadOptions) error
		if cfg.Region != "" {
			loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
		}
		// For DynamoDB Local: static credentials and a custom endpoint.
		if cfg.Endpoint != "" {
			loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider("local", "local", ""),
			))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), loadOpts...)
		if err != nil {
			return nil, fmt.Errorf("loading AWS config: %w", err)
		}
		var clientOpts []func(*dynamodb.Options)
		if cfg.Endpoint != "" {
			clientOpts = append(clientOpts, func(o *dynamodb.Options) {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			})
		}
		s.client = dynamodb.NewFromConfig(awsCfg, clientOpts...)
	}
	return s, nil
}

// PutCampaign stores a record using dual-write: a truth item keyed by
// the board item plus a per-board list copy keyed by run.
func (s *DynamoDBStore) PutCampaign(ctx context.Context, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling campaign record: %w", err)
	}

	_, err = s.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []ddbtypes.TransactWriteItem{
			{
				Put: &ddbtypes.Put{
					TableName: &s.tableName,
					Item: map[string]ddbtypes.AttributeValue{
						"PK":   &ddbtypes.AttributeValueMemberS{Value: itemPK(rec.ItemID)},
						"SK":   &ddbtypes.AttributeValueMemberS{Value: skLatest},
						"data": &ddbtypes.AttributeValueMemberS{Value: string(data)},
					},
				},
			},
			{
				Put: &ddbtypes.Put{
					TableName: &s.tableName,
					Item: map[string]ddbtypes.AttributeValue{
						"PK":   &ddbtypes.AttributeValueMemberS{Value: boardPK(rec.BoardID)},
						"SK":   &ddbtypes.AttributeValueMemberS{Value: runSK(rec)},
						"data": &ddbtypes.AttributeValueMemberS{Value: string(data)},
					},
				},
			},
		},
	})
	return err
}

// GetCampaign retrieves the latest record for an item (strongly
// consistent).
func (s *DynamoDBStore) GetCampaign(ctx context.Context, itemID string) (*Record, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      &s.tableName,
		ConsistentRead: aws.Bool(true),
		Key: map[string]ddbtypes.AttributeValue{
			"PK": &ddbtypes.AttributeValueMemberS{Value: itemPK(itemID)},
			"SK": &ddbtypes.AttributeValueMemberS{Value: skLatest},
		},
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}
	return decodeRecord(out.Item)
}

// ListCampaigns queries the per-board list copies, newest run first.
func (s *DynamoDBStore) ListCampaigns(ctx context.Context, boardID string, limit int) ([]Record, error) {
	input := &dynamodb.QueryInput{
		TableName:              &s.tableName,
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :run)"),
		ExpressionAttributeValues: map[string]ddbtypes.AttributeValue{
			":pk":  &ddbtypes.AttributeValueMemberS{Value: boardPK(boardID)},
			":run": &ddbtypes.AttributeValueMemberS{Value: prefixRun},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		input.Limit = aws.Int32(int32(limit))
	}

	out, err := s.client.Query(ctx, input)
	if err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(out.Items))
	for _, item := range out.Items {
		rec, err := decodeRecord(item)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, nil
}

// Start initializes the store: optionally creates the table, then pings.
func (s *DynamoDBStore) Start(ctx context.Context) error {
	if s.createTable {
		if err := s.ensureTable(ctx); err != nil {
			return err
		}
	}
	return s.Ping(ctx)
}

// Stop is a no-op for DynamoDB (no persistent connections to close).
func (s *DynamoDBStore) Stop(_ context.Context) error { return nil }

// Ping checks connectivity by describing the table.
func (s *DynamoDBStore) Ping(ctx context.Context) error {
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: &s.tableName,
	})
	if err != nil {
		return fmt.Errorf("dynamodb ping failed: %w", err)
	}
	return nil
}

func (s *DynamoDBStore) ensureTable(ctx context.Context) error {
	_, err := s.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: &s.tableName,
		KeySchema: []ddbtypes.KeySchemaElement{
			{AttributeName: aws.String("PK"), KeyType: ddbtypes.KeyTypeHash},
			{AttributeName: aws.String("SK"), KeyType: ddbtypes.KeyTypeRange},
		},
		AttributeDefinitions: []ddbtypes.AttributeDefinition{
			{AttributeName: aws.String("PK"), AttributeType: ddbtypes.ScalarAttributeTypeS},
			{AttributeName: aws.String("SK"), AttributeType: ddbtypes.ScalarAttributeTypeS},
		},
		BillingMode: ddbtypes.BillingModePayPerRequest,
	})
	if err != nil {
		var riue *ddbtypes.ResourceInUseException
		if errors.As(err, &riue) {
			return nil // table already exists
		}
		return fmt.Errorf("creating table: %w", err)
	}
	s.logger.Info("created campaign table", "table", s.tableName)
	return nil
}

func decodeRecord(item map[string]ddbtypes.AttributeValue) (*Record, error) {
	av, ok := item["data"]
	if !ok {
		return nil, fmt.Errorf("missing attribute %q", "data")
	}
	var data string
	if err := attributevalue.Unmarshal(av, &data); err != nil {
		return nil, fmt.Errorf("unmarshaling %q: %w", "data", err)
	}
	var rec Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("decoding campaign record: %w", err)
	}
	return &rec, nil
}
