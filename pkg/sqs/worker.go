package sqs

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"haru-weather/pkg/log"
)

// Worker health statuses
const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

// WorkerHealth represents the health check response for a Worker
type WorkerHealth struct {
	Status  string            `json:"status"`
	Details map[string]string `json:"details"`
}

// HandlerFunc defines a function that handles a SQS Message
type HandlerFunc func(msg *types.Message) error

// HandleMessage implements the Handler interface for HandlerFunc
func (f HandlerFunc) HandleMessage(msg *types.Message) error {
	return f(msg)
}

// Handler defines an interface that processes a SQS Message
type Handler interface {
	HandleMessage(msg *types.Message) error
}

// ReceiverClient defines the SQS operations the worker needs
type ReceiverClient interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// WorkerConfig defines the configuration options for a Worker
type WorkerConfig struct {
	MaxNumberOfMessages int32
	WaitTimeSeconds     int32
	PoolSize            int
}

// Worker polls and processes messages from a SQS queue
type Worker struct {
	sqsClient           ReceiverClient
	queueName           string
	queueURL            string
	maxNumberOfMessages int32
	waitTimeSeconds     int32
	poolSize            int
	handler             Handler

	mutex         sync.RWMutex
	running       bool
	lastReceiveAt time.Time
	lastErr       error
}

// NewWorker creates and returns a new Worker.
//
// If the provided WorkerConfig is nil or its fields are zero,
// the following defaults will be used:
//   - MaxNumberOfMessages: 10
//   - WaitTimeSeconds: 20
//   - PoolSize: 1
//
// Validations:
//   - MaxNumberOfMessages must be between 1 and 10.
//   - WaitTimeSeconds must be between 1 and 20.
//   - PoolSize must be greater than 0.
func NewWorker(ctx context.Context, sqsClient ReceiverClient, queueName string, handler Handler, config *WorkerConfig) (*Worker, error) {
	var maxMessages int32 = 10
	var waitTime int32 = 20
	poolSize := 1

	if config != nil {
		if config.MaxNumberOfMessages != 0 {
			maxMessages = config.MaxNumberOfMessages
		}
		if config.WaitTimeSeconds != 0 {
			waitTime = config.WaitTimeSeconds
		}
		if config.PoolSize != 0 {
			poolSize = config.PoolSize
		}
	}

	if maxMessages < 1 || maxMessages > 10 {
		return nil, errors.New("maxNumberOfMessages must be between 1 and 10")
	}
	if waitTime < 1 || waitTime > 20 {
		return nil, errors.New("waitTimeSeconds must be between 1 and 20")
	}
	if poolSize < 1 {
		return nil, errors.New("poolSize must be greater than 0")
	}

	result, err := sqsClient.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: &queueName,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to get queue URL: %w", err)
	}

	return &Worker{
		sqsClient:           sqsClient,
		queueName:           queueName,
		queueURL:            *result.QueueUrl,
		maxNumberOfMessages: maxMessages,
		waitTimeSeconds:     waitTime,
		poolSize:            poolSize,
		handler:             handler,
	}, nil
}

// Start begins polling messages and processing them concurrently.
// It spawns PoolSize workers that keep polling messages until the provided
// context is canceled.
func (w *Worker) Start(ctx context.Context) {
	var wg sync.WaitGroup

	w.mutex.Lock()
	w.running = true
	w.mutex.Unlock()

	defer func() {
		w.mutex.Lock()
		w.running = false
		w.mutex.Unlock()
	}()

	for i := 0; i < w.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.pollMessages(ctx)
		}()
	}

	wg.Wait()
}

func (w *Worker) pollMessages(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			output, err := w.sqsClient.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
				QueueUrl:            &w.queueURL,
				MaxNumberOfMessages: w.maxNumberOfMessages,
				WaitTimeSeconds:     w.waitTimeSeconds,
			})
			if err != nil {
				w.mutex.Lock()
				w.lastErr = err
				w.mutex.Unlock()
				log.Errorf("failed to receive messages from %s: %v", w.queueName, err)
				continue
			}

			w.mutex.Lock()
			w.lastReceiveAt = time.Now()
			w.lastErr = nil
			w.mutex.Unlock()

			for _, message := range output.Messages {
				go w.handleMessage(ctx, message)
			}
		}
	}
}

func (w *Worker) handleMessage(ctx context.Context, message types.Message) {
	if err := w.handler.HandleMessage(&message); err != nil {
		log.Errorf("error processing message ID %s: %v", safeMessageID(&message), err)
		return
	}

	_, err := w.sqsClient.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      &w.queueURL,
		ReceiptHandle: message.ReceiptHandle,
	})
	if err != nil {
		log.Errorf("failed to delete message ID %s: %v", safeMessageID(&message), err)
	}
}

// HealthCheck reports whether the worker is running and receiving messages
func (w *Worker) HealthCheck() WorkerHealth {
	w.mutex.RLock()
	defer w.mutex.RUnlock()

	details := map[string]string{
		"queue":     w.queueName,
		"pool_size": strconv.Itoa(w.poolSize),
	}
	if !w.lastReceiveAt.IsZero() {
		details["last_receive"] = w.lastReceiveAt.Format(time.RFC3339)
	}

	if !w.running {
		details["message"] = "worker not started"
		return WorkerHealth{Status: StatusDown, Details: details}
	}
	if w.lastErr != nil {
		details["message"] = w.lastErr.Error()
		return WorkerHealth{Status: StatusDown, Details: details}
	}

	return WorkerHealth{Status: StatusUp, Details: details}
}

func safeMessageID(msg *types.Message) string {
	if msg == nil || msg.MessageId == nil {
		return ""
	}
	return *msg.MessageId
}
