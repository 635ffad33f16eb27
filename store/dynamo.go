package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

const (
	partitionKey    = "PK"
	valuesAttribute = "Values"
)

// Dynamo keeps one item per view, keyed by PK, with the selection in a
// string map attribute.
type Dynamo struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewDynamo(client dynamodbiface.DynamoDBAPI, table string) *Dynamo {
	return &Dynamo{client: client, table: table}
}

// NewDynamoClient opens a client against region, or against a local
// endpoint such as http://localhost:8000 when endpoint is set.
func NewDynamoClient(region string, endpoint string) (*dynamodb.DynamoDB, error) {
	cfg := &aws.Config{Region: aws.String(region)}
	if endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating DynamoDB session: %w", err)
	}
	return dynamodb.New(sess), nil
}

func (d *Dynamo) Load(ctx context.Context, view string) (Selection, error) {
	out, err := d.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.table),
		Key: map[string]*dynamodb.AttributeValue{
			partitionKey: {S: aws.String(view)},
		},
	})
	if err != nil {
		return Selection{}, fmt.Errorf("loading selection %q: %w", view, err)
	}
	if out.Item == nil {
		return Selection{}, ErrNotFound
	}

	sel := Selection{View: view, Values: make(map[string]string)}
	if attr, ok := out.Item[valuesAttribute]; ok {
		for k, v := range attr.M {
			if v != nil && v.S != nil {
				sel.Values[k] = *v.S
			}
		}
	}
	return sel, nil
}

func (d *Dynamo) Save(ctx context.Context, sel Selection) error {
	values := make(map[string]*dynamodb.AttributeValue, len(sel.Values))
	for k, v := range sel.Values {
		values[k] = &dynamodb.AttributeValue{S: aws.String(v)}
	}
	_, err := d.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item: map[string]*dynamodb.AttributeValue{
			partitionKey:    {S: aws.String(sel.View)},
			valuesAttribute: {M: values},
		},
	})
	if err != nil {
		return fmt.Errorf("saving selection %q: %w", sel.View, err)
	}
	return nil
}
