// Package amqp backs the "queue" delivery method with a RabbitMQ topic
// exchange. The broker is optional; when no AMQP URL is configured the
// delivery handler simply does not register the method.
package amqp
