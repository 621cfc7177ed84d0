package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"

	"jamjam-resort-api/models"
)

// tableActiveTimeout bounds how long Provision waits for a new table to become ACTIVE.
const tableActiveTimeout = 2 * time.Minute

func (d *Dynamo) tableExists(ctx context.Context, name string) (bool, error) {
	_, err := d.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
	if err == nil {
		return true, nil
	}
	var notFound *types.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return false, nil
	}
	return false, err
}

func createTableInput(name string, c Collection) *dynamodb.CreateTableInput {
	attrs := map[string]bool{c.Key: true}
	defs := []types.AttributeDefinition{
		{AttributeName: aws.String(c.Key), AttributeType: types.ScalarAttributeTypeS},
	}
	define := func(attr string) {
		if attr == "" || attrs[attr] {
			return
		}
		attrs[attr] = true
		defs = append(defs, types.AttributeDefinition{AttributeName: aws.String(attr), AttributeType: types.ScalarAttributeTypeS})
	}

	var gsis []types.GlobalSecondaryIndex
	for _, idx := range c.Indexes {
		define(idx.HashKey)
		define(idx.RangeKey)
		schema := []types.KeySchemaElement{
			{AttributeName: aws.String(idx.HashKey), KeyType: types.KeyTypeHash},
		}
		if idx.RangeKey != "" {
			schema = append(schema, types.KeySchemaElement{AttributeName: aws.String(idx.RangeKey), KeyType: types.KeyTypeRange})
		}
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName:  aws.String(idx.Name),
			KeySchema:  schema,
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	return &dynamodb.CreateTableInput{
		TableName:              aws.String(name),
		AttributeDefinitions:   defs,
		KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String(c.Key), KeyType: types.KeyTypeHash}},
		GlobalSecondaryIndexes: gsis,
		BillingMode:            types.BillingModePayPerRequest,
	}
}

// Provision creates each missing table with its indexes and waits for it to become active.
func (d *Dynamo) Provision(ctx context.Context, colls ...Collection) ([]Collection, error) {
	var created []Collection
	for _, c := range colls {
		name := d.TableName(c)
		log := d.log.WithFields(logrus.Fields{"op": "provision", "table": name})

		exists, err := d.tableExists(ctx, name)
		if err != nil {
			return created, unavailable("describe", c, err)
		}
		if exists {
			log.Info("✓ table already exists")
			continue
		}

		log.Info("📦 creating table")
		if _, err := d.client.CreateTable(ctx, createTableInput(name, c)); err != nil {
			return created, unavailable("create table", c, err)
		}
		waiter := dynamodb.NewTableExistsWaiter(d.client)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}, tableActiveTimeout); err != nil {
			return created, fmt.Errorf("%w: table %s did not become active: %w", models.ErrDataUnavailable, name, err)
		}
		log.Info("✓ table is now ACTIVE")
		created = append(created, c)
	}
	return created, nil
}
