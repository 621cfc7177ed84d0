package store

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type apiCall[T, U any] func(context.Context, *T, ...func(*dynamodb.Options)) (*U, error)

// mockClient is an expectation-based DynamoDB client; any call without an expectation fails
// the test.
type mockClient struct {
	GetFunc      apiCall[dynamodb.GetItemInput, dynamodb.GetItemOutput]
	PutFunc      apiCall[dynamodb.PutItemInput, dynamodb.PutItemOutput]
	UpdateFunc   apiCall[dynamodb.UpdateItemInput, dynamodb.UpdateItemOutput]
	DeleteFunc   apiCall[dynamodb.DeleteItemInput, dynamodb.DeleteItemOutput]
	QueryFunc    apiCall[dynamodb.QueryInput, dynamodb.QueryOutput]
	ScanFunc     apiCall[dynamodb.ScanInput, dynamodb.ScanOutput]
	DescribeFunc apiCall[dynamodb.DescribeTableInput, dynamodb.DescribeTableOutput]
	CreateFunc   apiCall[dynamodb.CreateTableInput, dynamodb.CreateTableOutput]
}

var _ DynamoDBAPI = (*mockClient)(nil)

func unexpected[T, U any](t *testing.T) apiCall[T, U] {
	return func(context.Context, *T, ...func(*dynamodb.Options)) (*U, error) {
		t.Fatal("unexpected call")
		return nil, nil
	}
}

func newMockClient(t *testing.T) *mockClient {
	return &mockClient{
		GetFunc:      unexpected[dynamodb.GetItemInput, dynamodb.GetItemOutput](t),
		PutFunc:      unexpected[dynamodb.PutItemInput, dynamodb.PutItemOutput](t),
		UpdateFunc:   unexpected[dynamodb.UpdateItemInput, dynamodb.UpdateItemOutput](t),
		DeleteFunc:   unexpected[dynamodb.DeleteItemInput, dynamodb.DeleteItemOutput](t),
		QueryFunc:    unexpected[dynamodb.QueryInput, dynamodb.QueryOutput](t),
		ScanFunc:     unexpected[dynamodb.ScanInput, dynamodb.ScanOutput](t),
		DescribeFunc: unexpected[dynamodb.DescribeTableInput, dynamodb.DescribeTableOutput](t),
		CreateFunc:   unexpected[dynamodb.CreateTableInput, dynamodb.CreateTableOutput](t),
	}
}

func (m *mockClient) GetItem(ctx context.Context, p *dynamodb.GetItemInput, o ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return m.GetFunc(ctx, p, o...)
}

func (m *mockClient) PutItem(ctx context.Context, p *dynamodb.PutItemInput, o ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return m.PutFunc(ctx, p, o...)
}

func (m *mockClient) UpdateItem(ctx context.Context, p *dynamodb.UpdateItemInput, o ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return m.UpdateFunc(ctx, p, o...)
}

func (m *mockClient) DeleteItem(ctx context.Context, p *dynamodb.DeleteItemInput, o ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return m.DeleteFunc(ctx, p, o...)
}

func (m *mockClient) Query(ctx context.Context, p *dynamodb.QueryInput, o ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return m.QueryFunc(ctx, p, o...)
}

func (m *mockClient) Scan(ctx context.Context, p *dynamodb.ScanInput, o ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return m.ScanFunc(ctx, p, o...)
}

func (m *mockClient) DescribeTable(ctx context.Context, p *dynamodb.DescribeTableInput, o ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	return m.DescribeFunc(ctx, p, o...)
}

func (m *mockClient) CreateTable(ctx context.Context, p *dynamodb.CreateTableInput, o ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	return m.CreateFunc(ctx, p, o...)
}
