package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/ZivNavon/customer-management-tool/internal/ai"
	"github.com/ZivNavon/customer-management-tool/internal/model"
	"github.com/ZivNavon/customer-management-tool/internal/repository"
)

// OCRWorker consumes asset-uploaded events and runs text extraction over
// image assets, persisting the result on the asset row. Non-image assets are
// acked without work.
type OCRWorker struct {
	conn      *amqp.Connection
	assetRepo *repository.AssetRepository
	queueName string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewOCRWorker(conn *amqp.Connection, assetRepo *repository.AssetRepository, queueName string) *OCRWorker {
	return &OCRWorker{
		conn:      conn,
		assetRepo: assetRepo,
		queueName: queueName,
	}
}

func (w *OCRWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	_, err = ch.QueueDeclare(
		w.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("declare worker queue failed: %w", err)
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}

				var event model.AssetUploadedEvent
				if err := json.Unmarshal(d.Body, &event); err != nil {
					log.Printf("worker decode asset event failed: %v", err)
					_ = d.Nack(false, false)
					continue
				}

				if event.Kind != model.AssetKindImage {
					_ = d.Ack(false)
					continue
				}

				text := ai.ExtractTextFromImage(event.FileURL)
				if err := w.assetRepo.SetOCRText(event.AssetID, text); err != nil {
					log.Printf("worker persist ocr text failed: %v", err)
					_ = d.Nack(false, false)
					continue
				}

				_ = d.Ack(false)
			}
		}
	}()

	return nil
}

func (w *OCRWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
