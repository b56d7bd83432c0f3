package secrets

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"safarsathi/pkg/utils"
)

type MockSecretsManager struct {
	mock.Mock
}

func (m *MockSecretsManager) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*secretsmanager.GetSecretValueOutput), args.Error(1)
}

func TestEnvProvider_Lookup(t *testing.T) {
	ctx := context.Background()

	t.Setenv("GROQ_API_KEY", " gsk_test ")
	v, err := EnvProvider{}.Lookup(ctx, "GROQ_API_KEY")
	require.NoError(t, err)
	assert.Equal(t, "gsk_test", v)

	t.Setenv("GROQ_API_KEY", "")
	_, err = EnvProvider{}.Lookup(ctx, "GROQ_API_KEY")
	assert.ErrorIs(t, err, utils.ErrMissingCredential)
}

func TestSecretsManagerProvider_Lookup(t *testing.T) {
	ctx := context.Background()
	input := &secretsmanager.GetSecretValueInput{SecretId: aws.String("safarsathi/llm")}

	tests := []struct {
		name    string
		output  *secretsmanager.GetSecretValueOutput
		callErr error
		want    string
		wantErr error
	}{
		{
			name:   "raw string secret",
			output: &secretsmanager.GetSecretValueOutput{SecretString: aws.String("gsk_raw\n")},
			want:   "gsk_raw",
		},
		{
			name:   "json secret keyed by credential name",
			output: &secretsmanager.GetSecretValueOutput{SecretString: aws.String(`{"GROQ_API_KEY": "gsk_json", "OPENAI_API_KEY": "sk"}`)},
			want:   "gsk_json",
		},
		{
			name:    "json secret without the key",
			output:  &secretsmanager.GetSecretValueOutput{SecretString: aws.String(`{"OPENAI_API_KEY": "sk"}`)},
			wantErr: utils.ErrMissingCredential,
		},
		{
			name:    "binary secret",
			output:  &secretsmanager.GetSecretValueOutput{SecretBinary: []byte("x")},
			wantErr: utils.ErrMissingCredential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockSecretsManager)
			client.On("GetSecretValue", ctx, input).Return(tt.output, tt.callErr).Once()

			v, err := NewSecretsManagerProvider(client, "safarsathi/llm").Lookup(ctx, "GROQ_API_KEY")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, v)
			}
			client.AssertExpectations(t)
		})
	}

	t.Run("service error", func(t *testing.T) {
		client := new(MockSecretsManager)
		denied := errors.New("AccessDeniedException")
		client.On("GetSecretValue", ctx, input).Return(nil, denied).Once()

		_, err := NewSecretsManagerProvider(client, "safarsathi/llm").Lookup(ctx, "GROQ_API_KEY")
		assert.ErrorIs(t, err, denied)
	})

	t.Run("secret name is required", func(t *testing.T) {
		_, err := NewSecretsManagerProviderFromEnv(ctx, "")
		assert.ErrorIs(t, err, utils.ErrMissingCredential)
	})
}
