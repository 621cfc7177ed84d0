package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"

	"jamjam-resort-api/models"
)

// DynamoDBAPI is the slice of *dynamodb.Client the store uses.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

// Dynamo stores each collection in its own DynamoDB table named prefix+collection.
type Dynamo struct {
	client DynamoDBAPI
	prefix string
	log    logrus.FieldLogger
}

var _ Store = (*Dynamo)(nil)

// NewDynamo wraps a DynamoDB client.
func NewDynamo(client DynamoDBAPI, prefix string, log logrus.FieldLogger) *Dynamo {
	return &Dynamo{client: client, prefix: prefix, log: log}
}

// TableName is the physical table backing c.
func (d *Dynamo) TableName(c Collection) string {
	return d.prefix + c.Name
}

func keyOf(c Collection, key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		c.Key: &types.AttributeValueMemberS{Value: key},
	}
}

func unavailable(op string, c Collection, err error) error {
	return fmt.Errorf("%w: %s %s: %w", models.ErrDataUnavailable, op, c.Name, err)
}

func decodeItems(items []map[string]types.AttributeValue) ([]models.Document, error) {
	docs := make([]models.Document, 0, len(items))
	for _, item := range items {
		doc := models.Document{}
		if err := attributevalue.UnmarshalMap(item, &doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (d *Dynamo) Get(ctx context.Context, c Collection, key string) (models.Document, error) {
	out, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.TableName(c)),
		Key:       keyOf(c, key),
	})
	if err != nil {
		return nil, unavailable("get", c, err)
	}
	if len(out.Item) == 0 {
		return nil, models.ErrNotFound
	}
	doc := models.Document{}
	if err := attributevalue.UnmarshalMap(out.Item, &doc); err != nil {
		return nil, unavailable("get", c, err)
	}
	return doc, nil
}

func (d *Dynamo) Put(ctx context.Context, c Collection, doc models.Document) error {
	item, err := attributevalue.MarshalMap(doc)
	if err != nil {
		return fmt.Errorf("%w: encode %s record: %v", models.ErrValidation, c.Name, err)
	}
	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.TableName(c)),
		Item:      item,
	})
	if err != nil {
		return unavailable("put", c, err)
	}
	return nil
}

// compileUpdate turns u into a SET expression guarded by the key's existence, so that a
// missing record fails the condition instead of being created.
func compileUpdate(c Collection, u *Update) (expression.Expression, error) {
	var set expression.UpdateBuilder
	for i, name := range u.Fields() {
		v, _ := u.Value(name)
		if i == 0 {
			set = expression.Set(expression.NameNoDotSplit(name), expression.Value(v))
			continue
		}
		set = set.Set(expression.NameNoDotSplit(name), expression.Value(v))
	}
	return expression.NewBuilder().
		WithUpdate(set).
		WithCondition(expression.AttributeExists(expression.Name(c.Key))).
		Build()
}

func (d *Dynamo) Update(ctx context.Context, c Collection, key string, u *Update) (models.Document, error) {
	if u.Len() == 0 {
		return d.Get(ctx, c, key)
	}
	expr, err := compileUpdate(c, u)
	if err != nil {
		return nil, fmt.Errorf("%w: build update for %s: %v", models.ErrValidation, c.Name, err)
	}
	out, err := d.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(d.TableName(c)),
		Key:                       keyOf(c, key),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, models.ErrNotFound
		}
		return nil, unavailable("update", c, err)
	}
	doc := models.Document{}
	if err := attributevalue.UnmarshalMap(out.Attributes, &doc); err != nil {
		return nil, unavailable("update", c, err)
	}
	return doc, nil
}

func (d *Dynamo) Delete(ctx context.Context, c Collection, key string) error {
	_, err := d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.TableName(c)),
		Key:       keyOf(c, key),
	})
	if err != nil {
		return unavailable("delete", c, err)
	}
	return nil
}

func keyCondition(idx Index, q Query) expression.KeyConditionBuilder {
	cond := expression.Key(idx.HashKey).Equal(expression.Value(q.Value))
	if idx.RangeKey == "" {
		return cond
	}
	rk := expression.Key(idx.RangeKey)
	switch {
	case q.From != "" && q.To != "":
		cond = cond.And(rk.Between(expression.Value(q.From), expression.Value(q.To)))
	case q.From != "":
		cond = cond.And(rk.GreaterThanEqual(expression.Value(q.From)))
	case q.To != "":
		cond = cond.And(rk.LessThanEqual(expression.Value(q.To)))
	}
	return cond
}

func (d *Dynamo) Query(ctx context.Context, c Collection, q Query) ([]models.Document, error) {
	idx, ok := c.Index(q.Index)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no index %q", models.ErrValidation, c.Name, q.Index)
	}
	expr, err := expression.NewBuilder().WithKeyCondition(keyCondition(idx, q)).Build()
	if err != nil {
		return nil, fmt.Errorf("%w: build query for %s: %v", models.ErrValidation, c.Name, err)
	}
	p := dynamodb.NewQueryPaginator(d.client, &dynamodb.QueryInput{
		TableName:                 aws.String(d.TableName(c)),
		IndexName:                 aws.String(idx.Name),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(!q.Descending),
	})
	docs := []models.Document{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, unavailable("query", c, err)
		}
		batch, err := decodeItems(page.Items)
		if err != nil {
			return nil, unavailable("query", c, err)
		}
		docs = append(docs, batch...)
	}
	return docs, nil
}

func (d *Dynamo) Scan(ctx context.Context, c Collection, filters ...Filter) ([]models.Document, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(d.TableName(c))}
	if len(filters) > 0 {
		cond := expression.Name(filters[0].Attr).Equal(expression.Value(filters[0].Value))
		for _, f := range filters[1:] {
			cond = cond.And(expression.Name(f.Attr).Equal(expression.Value(f.Value)))
		}
		expr, err := expression.NewBuilder().WithFilter(cond).Build()
		if err != nil {
			return nil, fmt.Errorf("%w: build scan for %s: %v", models.ErrValidation, c.Name, err)
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	docs := []models.Document{}
	p := dynamodb.NewScanPaginator(d.client, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, unavailable("scan", c, err)
		}
		batch, err := decodeItems(page.Items)
		if err != nil {
			return nil, unavailable("scan", c, err)
		}
		docs = append(docs, batch...)
	}
	d.log.WithFields(logrus.Fields{"op": "scan", "collection": c.Name, "count": len(docs)}).Debug("scan complete")
	return docs, nil
}
