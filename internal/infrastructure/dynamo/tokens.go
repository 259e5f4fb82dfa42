package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-token-issuer/internal/domain"
)

// TableAPI is the subset of *dynamodb.Client used by TokenRepo.
type TableAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// TokenRepo stores issued 2FA tokens.
// The key schema is owned by the table: with PK user_id a new token replaces
// the previous one, with PK user_id + SK token they accumulate.
type TokenRepo struct {
	client    TableAPI
	tableName string
}

func NewTokenRepo(client TableAPI, tableName string) *TokenRepo {
	return &TokenRepo{client: client, tableName: tableName}
}

// Put writes the token unconditionally.
func (r *TokenRepo) Put(ctx context.Context, t *domain.Token) error {
	item, err := attributevalue.MarshalMap(t)
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// List scans the whole table. Items the TTL sweeper has not removed yet are included.
func (r *TokenRepo) List(ctx context.Context) ([]domain.Token, error) {
	tokens := []domain.Token{}
	p := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var page []domain.Token
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal tokens: %w", err)
		}
		tokens = append(tokens, page...)
	}
	return tokens, nil
}
